package devserver

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shpixel/gallery/internal/app"
	"github.com/shpixel/gallery/internal/logger"
	"github.com/shpixel/gallery/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := New(Config{
		TokenSignKey:  "test-sign-key",
		TokenDuration: time.Hour,
		DevOTP:        "123456",
		AdminEmails:   []string{"admin@example.com"},
	}, logger.Nop())

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, token string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func signIn(t *testing.T, ts *httptest.Server, email string) (models.User, string) {
	t.Helper()
	resp := postJSON(t, ts.URL+"/auth/request-otp/", "", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/auth/verify-otp/", "", map[string]string{"email": email, "otp": "123456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	auth := decode[models.AuthResponse](t, resp)
	require.NotEmpty(t, auth.Token)
	return auth.User, auth.Token
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestRequestOTP(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/auth/request-otp/", "", map[string]string{"email": "user@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[models.OtpResponse](t, resp)
	assert.True(t, out.OtpSent)
	assert.Equal(t, app.MsgOtpSent, out.Message)
}

func TestRequestOTP_EmptyEmail(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/auth/request-otp/", "", map[string]string{"email": " "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/auth/request-otp/", "", map[string]string{"email": "user@example.com"})
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/auth/verify-otp/", "", map[string]string{"email": "user@example.com", "otp": "999999"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	apiErr := decode[models.APIError](t, resp)
	assert.Equal(t, app.MsgInvalidOtp, apiErr.Error)
}

func TestVerifyOTP_WithoutRequest(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/auth/verify-otp/", "", map[string]string{"email": "nobody@example.com", "otp": "123456"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	apiErr := decode[models.APIError](t, resp)
	assert.Equal(t, app.MsgInvalidEmailOrOtp, apiErr.Error)
}

func TestSignIn_NewUserHasIncompleteProfile(t *testing.T) {
	ts := newTestServer(t)

	user, _ := signIn(t, ts, "fresh@example.com")
	assert.False(t, user.IsProfileComplete)
	assert.False(t, user.IsAdmin)
}

func TestSignIn_AdminEmailGetsAdminFlag(t *testing.T) {
	ts := newTestServer(t)

	user, _ := signIn(t, ts, "admin@example.com")
	assert.True(t, user.IsAdmin)
}

func TestSetupProfile(t *testing.T) {
	ts := newTestServer(t)
	_, token := signIn(t, ts, "user@example.com")

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("name", "Ada"))
	require.NoError(t, form.WriteField("phone", "+1 555 0100"))
	require.NoError(t, form.WriteField("gender", "female"))
	require.NoError(t, form.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/auth/setup-profile/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	auth := decode[models.AuthResponse](t, resp)
	assert.True(t, auth.User.IsProfileComplete)
	require.NotNil(t, auth.User.Name)
	assert.Equal(t, "Ada", *auth.User.Name)
	assert.NotEmpty(t, auth.Token, "profile completion re-issues the token")
}

func TestProtectedEndpoints_RejectMissingToken(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/photos/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// ── photos ───────────────────────────────────────────────────────────────────

func TestPhotos_CRUD(t *testing.T) {
	ts := newTestServer(t)
	_, token := signIn(t, ts, "user@example.com")

	// create
	resp := postJSON(t, ts.URL+"/photos/", token, models.Photo{ID: "p1", Title: "Dawn"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[models.Photo](t, resp)
	assert.Equal(t, "/media/photos/p1.jpg", created.Src)

	// duplicate id conflicts
	resp = postJSON(t, ts.URL+"/photos/", token, models.Photo{ID: "p1", Title: "Again"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// list
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/photos/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	photos := decode[[]models.Photo](t, listResp)
	require.Len(t, photos, 1)

	// patch
	patch, _ := json.Marshal(models.Photo{Title: "Dawn, renamed", Favorite: true})
	patchReq, _ := http.NewRequest(http.MethodPatch, ts.URL+"/photos/p1/", bytes.NewReader(patch))
	patchReq.Header.Set("Authorization", "Bearer "+token)
	patchResp, err := http.DefaultClient.Do(patchReq)
	require.NoError(t, err)
	updated := decode[models.Photo](t, patchResp)
	assert.Equal(t, "p1", updated.ID)
	assert.True(t, updated.Favorite)
	assert.Equal(t, "/media/photos/p1.jpg", updated.Src, "server URIs survive a patch")

	// delete
	delReq, _ := http.NewRequest(http.MethodDelete, ts.URL+"/photos/p1/", nil)
	delReq.Header.Set("Authorization", "Bearer "+token)
	delResp, err := http.DefaultClient.Do(delReq)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	// delete of a missing photo 404s
	delReq, _ = http.NewRequest(http.MethodDelete, ts.URL+"/photos/p1/", nil)
	delReq.Header.Set("Authorization", "Bearer "+token)
	delResp, err = http.DefaultClient.Do(delReq)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, delResp.StatusCode)
	delResp.Body.Close()
}

func TestDeletePhoto_ScrubsAlbumMembership(t *testing.T) {
	ts := newTestServer(t)
	_, token := signIn(t, ts, "user@example.com")

	resp := postJSON(t, ts.URL+"/photos/", token, models.Photo{ID: "p1", Title: "One"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/albums/", token, models.Album{ID: "a1", Name: "Trip", PhotoIDs: []string{"p1"}})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	delReq, _ := http.NewRequest(http.MethodDelete, ts.URL+"/photos/p1/", nil)
	delReq.Header.Set("Authorization", "Bearer "+token)
	delResp, err := http.DefaultClient.Do(delReq)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/albums/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	albums := decode[[]models.Album](t, listResp)
	require.Len(t, albums, 1)
	assert.Empty(t, albums[0].PhotoIDs)
}

func TestPhotos_PerUserIsolation(t *testing.T) {
	ts := newTestServer(t)
	_, tokenA := signIn(t, ts, "a@example.com")
	_, tokenB := signIn(t, ts, "b@example.com")

	resp := postJSON(t, ts.URL+"/photos/", tokenA, models.Photo{ID: "p1", Title: "Mine"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/photos/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenB)
	listResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	photos := decode[[]models.Photo](t, listResp)
	assert.Empty(t, photos)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shpixel/gallery/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL, Timeout: 5 * time.Second})
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── auth endpoints ───────────────────────────────────────────────────────────

func TestRequestOTP_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/request-otp/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])

		writeJSON(t, w, http.StatusOK, models.OtpResponse{
			Email:   "user@example.com",
			OtpSent: true,
			Message: "OTP sent successfully to your email.",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	out, err := a.RequestOTP(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.True(t, out.OtpSent)
	assert.Equal(t, "OTP sent successfully to your email.", out.Message)
}

func TestVerifyOTP_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify-otp/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "123456", body["otp"])

		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			User:  models.User{ID: 1, Email: "user@example.com", IsProfileComplete: true},
			Token: "tok-abc",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	out, err := a.VerifyOTP(context.Background(), "user@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", out.Token)
	assert.Equal(t, "tok-abc", a.Token())
}

func TestVerifyOTP_InvalidCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.APIError{Error: "Invalid OTP."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.VerifyOTP(context.Background(), "user@example.com", "000000")
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Invalid OTP.")
	assert.Empty(t, a.Token())
}

// ── bearer token plumbing ────────────────────────────────────────────────────

func TestAuthedRequest_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.Photo{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok-abc")

	_, err := a.ListPhotos(context.Background())
	require.NoError(t, err)
}

func TestUnauthorized_ClearsTokenAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.APIError{Message: "token is expired or invalid"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stale")

	hookFired := false
	a.OnUnauthorized(func() { hookFired = true })

	// 401 from a gallery endpoint, not an auth one
	_, err := a.ListPhotos(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, hookFired)
	assert.Empty(t, a.Token())
}

// ── gallery endpoints ────────────────────────────────────────────────────────

func TestListPhotos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/photos/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.Photo{{ID: "p1", Title: "Dawn"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	photos, err := a.ListPhotos(context.Background())
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "p1", photos[0].ID)
}

func TestUploadPhoto_MultipartMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/photos/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var photo models.Photo
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("photo")), &photo))
		assert.Equal(t, "Dawn", photo.Title)

		photo.Src = "/media/photos/p1.jpg"
		writeJSON(t, w, http.StatusCreated, photo)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	stored, err := a.UploadPhoto(context.Background(), models.Photo{ID: "p1", Title: "Dawn"}, "")
	require.NoError(t, err)
	assert.Equal(t, "/media/photos/p1.jpg", stored.Src)
}

func TestUpdatePhoto_PatchByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/photos/p1/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.UpdatePhoto(context.Background(), models.Photo{ID: "p1", Title: "Renamed"}))
}

func TestDeleteAlbum_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/albums/ghost/", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.APIError{Error: "album not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteAlbum(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError_StatusToSentinel(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrServerUnavailable},
		{http.StatusServiceUnavailable, ErrServerUnavailable},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		a := newTestAdapter(t, srv.URL)
		err := a.Logout(context.Background())
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
		srv.Close()
	}
}

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/shpixel/gallery/models"
)

// HTTPClientConfig configures the REST adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// NewHTTPServerAdapter builds a [ServerAdapter] over resty. The 30s default
// timeout covers the slowest expected call (multipart photo upload); no
// request is retried automatically, retries are user-triggered.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) OnUnauthorized(hook func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = hook
}

func (h *httpServerAdapter) RequestOTP(ctx context.Context, email string) (models.OtpResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post("/auth/request-otp/")
	if err != nil {
		return models.OtpResponse{}, fmt.Errorf("request otp: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.OtpResponse{}, err
	}

	var out models.OtpResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.OtpResponse{}, fmt.Errorf("decode otp response: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) VerifyOTP(ctx context.Context, email, code string) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "otp": code}).
		Post("/auth/verify-otp/")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("verify otp: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var out models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode verify response: %w", err)
	}
	if out.Token == "" {
		return models.AuthResponse{}, errors.New("verify response without token")
	}

	h.SetToken(out.Token)
	return out, nil
}

func (h *httpServerAdapter) SetupProfile(ctx context.Context, setup models.ProfileSetup) (models.AuthResponse, error) {
	req := h.authedRequest(ctx).
		SetFormData(map[string]string{
			"name":   setup.Name,
			"phone":  setup.Phone,
			"gender": setup.Gender,
		})
	if setup.AvatarPath != "" {
		req.SetFile("avatar", setup.AvatarPath)
	}

	resp, err := req.Post("/auth/setup-profile/")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("setup profile: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var out models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode profile response: %w", err)
	}
	if out.Token == "" {
		return models.AuthResponse{}, errors.New("profile response without token")
	}

	h.SetToken(out.Token)
	return out, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/auth/logout/")
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return h.checkResponse(resp)
}

func (h *httpServerAdapter) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	resp, err := h.authedRequest(ctx).Get("/photos/")
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	var photos []models.Photo
	if err = json.Unmarshal(resp.Body(), &photos); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}
	return photos, nil
}

func (h *httpServerAdapter) UploadPhoto(ctx context.Context, photo models.Photo, filePath string) (models.Photo, error) {
	meta, err := json.Marshal(photo)
	if err != nil {
		return models.Photo{}, fmt.Errorf("encode photo metadata: %w", err)
	}

	req := h.authedRequest(ctx).
		SetMultipartField("photo", "", "application/json", strings.NewReader(string(meta)))
	if filePath != "" {
		req.SetFile("image", filePath)
	}

	resp, err := req.Post("/photos/")
	if err != nil {
		return models.Photo{}, fmt.Errorf("upload photo: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Photo{}, err
	}

	var stored models.Photo
	if err = json.Unmarshal(resp.Body(), &stored); err != nil {
		return models.Photo{}, fmt.Errorf("decode uploaded photo: %w", err)
	}
	return stored, nil
}

func (h *httpServerAdapter) UpdatePhoto(ctx context.Context, photo models.Photo) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(photo).
		Patch("/photos/" + photo.ID + "/")
	if err != nil {
		return fmt.Errorf("update photo: %w", err)
	}
	return h.checkResponse(resp)
}

func (h *httpServerAdapter) DeletePhoto(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/photos/" + id + "/")
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return h.checkResponse(resp)
}

func (h *httpServerAdapter) ListAlbums(ctx context.Context) ([]models.Album, error) {
	resp, err := h.authedRequest(ctx).Get("/albums/")
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	var albums []models.Album
	if err = json.Unmarshal(resp.Body(), &albums); err != nil {
		return nil, fmt.Errorf("decode albums: %w", err)
	}
	return albums, nil
}

func (h *httpServerAdapter) CreateAlbum(ctx context.Context, album models.Album) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(album).
		Post("/albums/")
	if err != nil {
		return fmt.Errorf("create album: %w", err)
	}
	return h.checkResponse(resp)
}

func (h *httpServerAdapter) UpdateAlbum(ctx context.Context, album models.Album) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(album).
		Patch("/albums/" + album.ID + "/")
	if err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	return h.checkResponse(resp)
}

func (h *httpServerAdapter) DeleteAlbum(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/albums/" + id + "/")
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	return h.checkResponse(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// checkResponse maps the status to a sentinel error and, on 401, drops the
// stored token and fires the unauthorized hook. The hook runs for every
// endpoint, not just the auth ones; that is the global session-clear
// contract the rest of the application relies on.
func (h *httpServerAdapter) checkResponse(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err != nil && errors.Is(err, ErrUnauthorized) {
		h.SetToken("")

		h.mu.RLock()
		hook := h.onUnauthorized
		h.mu.RUnlock()
		if hook != nil {
			hook()
		}
	}
	return err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shpixel/gallery/internal/adapter"
	"github.com/shpixel/gallery/internal/logger"
	"github.com/shpixel/gallery/internal/session"
	"github.com/shpixel/gallery/internal/store"
	"github.com/shpixel/gallery/models"
)

type authService struct {
	adapter adapter.ServerAdapter
	session *session.Session
	local   store.LocalStore
	logger  *logger.Logger

	mu       sync.Mutex
	state    AuthState
	inflight map[string]struct{}
}

func NewAuthService(serverAdapter adapter.ServerAdapter, sess *session.Session, local store.LocalStore, log *logger.Logger) AuthService {
	return &authService{
		adapter:  serverAdapter,
		session:  sess,
		local:    local,
		logger:   log,
		state:    StateSignedOut,
		inflight: make(map[string]struct{}),
	}
}

func (a *authService) State() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *authService) RequestOTP(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	if err := a.begin("request-otp"); err != nil {
		return "", err
	}
	defer a.end("request-otp")

	resp, err := a.adapter.RequestOTP(ctx, email)
	if err != nil {
		// Stay in the current state; the user simply retries.
		return "", err
	}

	a.setState(StateCodeRequested)
	return resp.Message, nil
}

func (a *authService) VerifyOTP(ctx context.Context, email, code string) (NextStep, error) {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if email == "" {
		return StepEnterCode, ErrEmailRequired
	}
	if code == "" {
		return StepEnterCode, ErrCodeRequired
	}

	if err := a.begin("verify-otp"); err != nil {
		return StepEnterCode, err
	}
	defer a.end("verify-otp")

	resp, err := a.adapter.VerifyOTP(ctx, email, code)
	if err != nil {
		return StepEnterCode, err
	}

	// User record and token become visible together.
	a.session.Set(resp.User, resp.Token)
	a.persistSession(ctx, resp)

	if !resp.User.IsProfileComplete {
		a.setState(StateVerified)
		return StepProfileSetup, nil
	}
	a.setState(StateReady)
	return StepGallery, nil
}

func (a *authService) SetupProfile(ctx context.Context, setup models.ProfileSetup) error {
	if strings.TrimSpace(setup.Name) == "" ||
		strings.TrimSpace(setup.Phone) == "" ||
		strings.TrimSpace(setup.Gender) == "" {
		return ErrProfileRequired
	}

	if err := a.begin("setup-profile"); err != nil {
		return err
	}
	defer a.end("setup-profile")

	resp, err := a.adapter.SetupProfile(ctx, setup)
	if err != nil {
		return err
	}

	a.session.Set(resp.User, resp.Token)
	a.persistSession(ctx, resp)
	a.setState(StateReady)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.begin("logout"); err != nil {
		return err
	}
	defer a.end("logout")

	// Remote invalidation is best-effort: the local session goes away no
	// matter what the network does.
	err := a.adapter.Logout(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("remote logout failed, clearing local session anyway")
	}

	a.clearEverywhere()
	return nil
}

func (a *authService) RestoreSession(ctx context.Context) (NextStep, error) {
	user, token, err := a.local.Session(ctx)
	if err != nil {
		return StepEnterCode, err
	}

	if err = session.CheckTokenFreshness(token, time.Now()); err != nil {
		a.logger.Info().Err(err).Msg("discarding stale cached session")
		if clearErr := a.local.ClearSession(ctx); clearErr != nil {
			a.logger.Warn().Err(clearErr).Msg("failed to clear stale cached session")
		}
		return StepEnterCode, err
	}

	a.session.Set(user, token)
	a.adapter.SetToken(token)

	if !user.IsProfileComplete {
		a.setState(StateVerified)
		return StepProfileSetup, nil
	}
	a.setState(StateReady)
	return StepGallery, nil
}

func (a *authService) Invalidate() {
	a.clearEverywhere()
}

func (a *authService) clearEverywhere() {
	a.session.Clear()
	a.adapter.SetToken("")
	a.setState(StateSignedOut)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.local.ClearSession(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("failed to clear cached session")
	}
}

func (a *authService) persistSession(ctx context.Context, resp models.AuthResponse) {
	if err := a.local.SaveSession(ctx, resp.User, resp.Token); err != nil {
		a.logger.Warn().Err(err).Msg("failed to persist session to local cache")
	}
}

func (a *authService) setState(s AuthState) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

// begin reserves the named action, rejecting overlapping identical calls.
func (a *authService) begin(action string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, busy := a.inflight[action]; busy {
		return ErrRequestInFlight
	}
	a.inflight[action] = struct{}{}
	return nil
}

func (a *authService) end(action string) {
	a.mu.Lock()
	delete(a.inflight, action)
	a.mu.Unlock()
}

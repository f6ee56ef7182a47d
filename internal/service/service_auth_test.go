// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shpixel/gallery/internal/adapter"
	"github.com/shpixel/gallery/internal/app"
	"github.com/shpixel/gallery/internal/logger"
	"github.com/shpixel/gallery/internal/mock"
	"github.com/shpixel/gallery/internal/session"
	"github.com/shpixel/gallery/internal/store"
	"github.com/shpixel/gallery/models"
)

func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (*authService, *mock.MockServerAdapter, *mock.MockLocalStore, *session.Session) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockLocal := mock.NewMockLocalStore(ctrl)
	sess := session.New()

	svc := NewAuthService(mockAdapter, sess, mockLocal, logger.Nop()).(*authService)
	return svc, mockAdapter, mockLocal, sess
}

func completeUser() models.User {
	return models.User{ID: 1, Email: "user@example.com", IsProfileComplete: true}
}

func freshToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(ttl).Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

// ── RequestOTP ───────────────────────────────────────────────────────────────

func TestAuthService_RequestOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		RequestOTP(ctx, "user@example.com").
		Return(models.OtpResponse{Email: "user@example.com", OtpSent: true, Message: app.MsgOtpSent}, nil)

	message, err := svc.RequestOTP(ctx, "  user@example.com  ")
	require.NoError(t, err)
	assert.Equal(t, app.MsgOtpSent, message)
	assert.Equal(t, StateCodeRequested, svc.State())
}

func TestAuthService_RequestOTP_EmptyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RequestOTP(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmailRequired)
	assert.Equal(t, StateSignedOut, svc.State())
}

func TestAuthService_RequestOTP_AdapterFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		RequestOTP(ctx, "user@example.com").
		Return(models.OtpResponse{}, adapter.ErrServerUnavailable)

	_, err := svc.RequestOTP(ctx, "user@example.com")
	assert.ErrorIs(t, err, adapter.ErrServerUnavailable)
	assert.Equal(t, StateSignedOut, svc.State())
}

func TestAuthService_RequestOTP_RejectsOverlappingCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().
		RequestOTP(ctx, "user@example.com").
		DoAndReturn(func(context.Context, string) (models.OtpResponse, error) {
			close(started)
			<-release
			return models.OtpResponse{Message: app.MsgOtpSent}, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := svc.RequestOTP(ctx, "user@example.com")
		done <- err
	}()

	<-started
	_, err := svc.RequestOTP(ctx, "user@example.com")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(release)
	require.NoError(t, <-done)
}

// ── VerifyOTP ────────────────────────────────────────────────────────────────

func TestAuthService_VerifyOTP_CompleteProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := completeUser()

	mockAdapter.EXPECT().
		VerifyOTP(ctx, "user@example.com", "123456").
		Return(models.AuthResponse{User: user, Token: "tok-1"}, nil)
	mockLocal.EXPECT().SaveSession(ctx, user, "tok-1").Return(nil)

	step, err := svc.VerifyOTP(ctx, "user@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, StepGallery, step)
	assert.Equal(t, StateReady, svc.State())

	snap := sess.Current()
	assert.True(t, snap.Authenticated())
	assert.Equal(t, user.Email, snap.User.Email)
	assert.Equal(t, "tok-1", snap.Token)
}

func TestAuthService_VerifyOTP_IncompleteProfileRoutesToSetup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: 2, Email: "new@example.com"}

	mockAdapter.EXPECT().
		VerifyOTP(ctx, "new@example.com", "123456").
		Return(models.AuthResponse{User: user, Token: "tok-2"}, nil)
	mockLocal.EXPECT().SaveSession(ctx, user, "tok-2").Return(nil)

	step, err := svc.VerifyOTP(ctx, "new@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, StepProfileSetup, step)
	assert.Equal(t, StateVerified, svc.State())
}

func TestAuthService_VerifyOTP_FailureLeavesSessionUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		VerifyOTP(ctx, "user@example.com", "000000").
		Return(models.AuthResponse{}, adapter.ErrUnauthorized)

	step, err := svc.VerifyOTP(ctx, "user@example.com", "000000")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, StepEnterCode, step)
	assert.False(t, sess.Authenticated())
}

func TestAuthService_VerifyOTP_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.VerifyOTP(ctx, "", "123456")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.VerifyOTP(ctx, "user@example.com", "  ")
	assert.ErrorIs(t, err, ErrCodeRequired)
}

// ── SetupProfile ─────────────────────────────────────────────────────────────

func TestAuthService_SetupProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	setup := models.ProfileSetup{Name: "Ada", Phone: "+1 555 0100", Gender: "female"}
	user := completeUser()

	mockAdapter.EXPECT().
		SetupProfile(ctx, setup).
		Return(models.AuthResponse{User: user, Token: "tok-fresh"}, nil)
	mockLocal.EXPECT().SaveSession(ctx, user, "tok-fresh").Return(nil)

	require.NoError(t, svc.SetupProfile(ctx, setup))
	assert.Equal(t, StateReady, svc.State())
	assert.Equal(t, "tok-fresh", sess.Token())
}

func TestAuthService_SetupProfile_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	err := svc.SetupProfile(context.Background(), models.ProfileSetup{Name: "Ada"})
	assert.ErrorIs(t, err, ErrProfileRequired)
}

// ── Logout / Invalidate ──────────────────────────────────────────────────────

func TestAuthService_Logout_ClearsDespiteRemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	sess.Set(completeUser(), "tok-1")

	mockAdapter.EXPECT().Logout(ctx).Return(adapter.ErrServerUnavailable)
	mockAdapter.EXPECT().SetToken("")
	mockLocal.EXPECT().ClearSession(gomock.Any()).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, sess.Authenticated())
	assert.Equal(t, StateSignedOut, svc.State())
}

func TestAuthService_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal, sess := newTestAuthSvc(t, ctrl)
	sess.Set(completeUser(), "tok-1")

	mockAdapter.EXPECT().SetToken("")
	mockLocal.EXPECT().ClearSession(gomock.Any()).Return(nil)

	svc.Invalidate()
	assert.False(t, sess.Authenticated())
	assert.Equal(t, StateSignedOut, svc.State())
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestAuthService_RestoreSession_FreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := completeUser()
	token := freshToken(t, time.Hour)

	mockLocal.EXPECT().Session(ctx).Return(user, token, nil)
	mockAdapter.EXPECT().SetToken(token)

	step, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepGallery, step)
	assert.Equal(t, StateReady, svc.State())
	assert.Equal(t, token, sess.Token())
}

func TestAuthService_RestoreSession_IncompleteProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: 3, Email: "half@example.com"}
	token := freshToken(t, time.Hour)

	mockLocal.EXPECT().Session(ctx).Return(user, token, nil)
	mockAdapter.EXPECT().SetToken(token)

	step, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepProfileSetup, step)
	assert.Equal(t, StateVerified, svc.State())
}

func TestAuthService_RestoreSession_ExpiredTokenDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockLocal, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	token := freshToken(t, -time.Hour)

	mockLocal.EXPECT().Session(ctx).Return(completeUser(), token, nil)
	mockLocal.EXPECT().ClearSession(ctx).Return(nil)

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, session.ErrTokenExpired)
	assert.False(t, sess.Authenticated())
}

func TestAuthService_RestoreSession_NoCachedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockLocal, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockLocal.EXPECT().
		Session(ctx).
		Return(models.User{}, "", store.ErrLocalSessionNotFound)

	_, err := svc.RestoreSession(ctx)
	assert.True(t, errors.Is(err, store.ErrLocalSessionNotFound))
}

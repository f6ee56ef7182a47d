// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

// Package devserver is an in-memory stand-in for the SH Pixel identity and
// gallery services. It exists for offline development and for the client's
// integration tests; nothing here persists across restarts.
//
// The OTP is never mailed: it is written to the server log (and can be pinned
// with the DevOTP setting), which is enough for a local loop.
package devserver

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/shpixel/gallery/internal/logger"
	"github.com/shpixel/gallery/models"
)

// Config carries the stub server settings.
type Config struct {
	TokenSignKey  string
	TokenDuration time.Duration
	// DevOTP pins the one-time code for reproducible scripted logins.
	// Empty means a fresh 6-digit code per request.
	DevOTP string
	// AdminEmails lists addresses that receive the admin flag on first login.
	AdminEmails []string
}

type account struct {
	user models.User
}

// Server implements the HTTP API. All state lives behind one mutex; the
// stub is a test fixture, not a production service.
type Server struct {
	logger *logger.Logger
	cfg    Config

	mu         sync.Mutex
	otps       map[string]issuedOTP
	accounts   map[string]*account // keyed by email
	byID       map[int64]*account
	nextUserID int64
	photos     map[int64][]models.Photo // keyed by user id
	albums     map[int64][]models.Album
}

type issuedOTP struct {
	code      string
	expiresAt time.Time
}

const otpLifetime = 5 * time.Minute

// New constructs the stub server.
func New(cfg Config, log *logger.Logger) *Server {
	if cfg.TokenSignKey == "" {
		cfg.TokenSignKey = "dev-only-sign-key"
	}
	if cfg.TokenDuration <= 0 {
		cfg.TokenDuration = 12 * time.Hour
	}

	return &Server{
		logger:     log,
		cfg:        cfg,
		otps:       make(map[string]issuedOTP),
		accounts:   make(map[string]*account),
		byID:       make(map[int64]*account),
		nextUserID: 1,
		photos:     make(map[int64][]models.Photo),
		albums:     make(map[int64][]models.Album),
	}
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("stub server listening")
	return http.ListenAndServe(addr, s.Routes())
}

func (s *Server) issueOTP(email string) string {
	code := s.cfg.DevOTP
	if code == "" {
		code = fmt.Sprintf("%06d", rand.Intn(1000000))
	}

	s.mu.Lock()
	s.otps[email] = issuedOTP{code: code, expiresAt: time.Now().Add(otpLifetime)}
	s.mu.Unlock()

	return code
}

// consumeOTP validates and burns the pending code for email.
func (s *Server) consumeOTP(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	issued, ok := s.otps[email]
	if !ok {
		return errInvalidEmailOrOTP
	}
	if time.Now().After(issued.expiresAt) {
		delete(s.otps, email)
		return errOTPExpired
	}
	if issued.code != code {
		return errInvalidOTP
	}

	delete(s.otps, email)
	return nil
}

// ensureAccount returns the account for email, creating a blank profile on
// first login.
func (s *Server) ensureAccount(email string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acc, ok := s.accounts[email]; ok {
		return acc.user
	}

	user := models.User{
		ID:    s.nextUserID,
		Email: email,
	}
	for _, admin := range s.cfg.AdminEmails {
		if admin == email {
			user.IsAdmin = true
		}
	}
	s.nextUserID++

	acc := &account{user: user}
	s.accounts[email] = acc
	s.byID[user.ID] = acc
	return user
}

func (s *Server) userByID(id int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[id]
	if !ok {
		return models.User{}, false
	}
	return acc.user, true
}

func (s *Server) updateUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acc, ok := s.byID[user.ID]; ok {
		acc.user = user
	}
}

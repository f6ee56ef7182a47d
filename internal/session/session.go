// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

// Package session holds the authenticated identity and bearer credential for
// the running application, plus the access-guard predicates evaluated before
// every protected navigation.
//
// The auth flow is the only writer (besides explicit Clear); user record and
// token always become visible together, so a reader can never observe a user
// without its token or vice versa.
package session

import (
	"sync"

	"github.com/shpixel/gallery/models"
)

// Snapshot is an immutable copy of the session state at one point in time.
type Snapshot struct {
	User  models.User
	Token string
}

// Authenticated reports whether a bearer credential is present. A cached user
// record without a token does not count as authenticated.
func (s Snapshot) Authenticated() bool {
	return s.Token != ""
}

// Admin reports whether the session belongs to an authenticated admin user.
func (s Snapshot) Admin() bool {
	return s.Authenticated() && s.User.IsAdmin
}

// Session is the mutable container. The zero value is an unauthenticated
// session and is ready to use.
type Session struct {
	mu    sync.RWMutex
	user  models.User
	token string
}

func New() *Session {
	return &Session{}
}

// Set atomically overwrites the session with a fresh user record and token.
func (s *Session) Set(user models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
}

// Clear atomically drops both the user record and the token.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = models.User{}
	s.token = ""
}

// Current returns a consistent snapshot of the session.
func (s *Session) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{User: s.user, Token: s.token}
}

// Token returns the current bearer credential, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated is a convenience shortcut over Current().
func (s *Session) Authenticated() bool {
	return s.Current().Authenticated()
}

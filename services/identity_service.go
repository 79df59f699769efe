package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"reservation-demo/config"
	"reservation-demo/models"
)

// IdentityService owns the session and token registries and resolves caller
// identity under the currently configured auth mode. Registry mutation goes
// through one mutex; a mode switch clears both registries in the same
// critical section.
type IdentityService struct {
	mu       sync.Mutex
	cfg      *config.Runtime
	sessions map[string]models.Session
	tokens   map[string]models.Token
}

func NewIdentityService(cfg *config.Runtime) *IdentityService {
	return &IdentityService{
		cfg:      cfg,
		sessions: make(map[string]models.Session),
		tokens:   make(map[string]models.Token),
	}
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Login establishes identity for a caller whose credentials already checked
// out. In token mode it mints and registers a fresh token and returns it; in
// cookie mode it upserts the session entry and returns an empty token (the
// cookie is the caller's concern).
func (s *IdentityService) Login(username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.AuthMode() == config.AuthModeToken {
		suffix, err := generateTokenHex(16)
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}
		token := fmt.Sprintf("%s-%s", username, suffix)
		s.tokens[token] = models.Token{Value: token, Username: username, CreatedAt: time.Now()}
		return token, nil
	}

	s.sessions[username] = models.Session{Username: username, LastSeen: time.Now()}
	return "", nil
}

// ResolveCookie resolves identity from a session cookie value and refreshes
// the entry's last-seen timestamp. The cookie value is trusted verbatim.
func (s *IdentityService) ResolveCookie(username string) string {
	if username == "" {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[username] = models.Session{Username: username, LastSeen: time.Now()}
	return username
}

// ResolveToken resolves identity by exact registry lookup. An unknown token
// is not an error: the caller is simply unauthenticated.
func (s *IdentityService) ResolveToken(token string) string {
	if token == "" {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[token]
	if !ok {
		return ""
	}
	return t.Username
}

// Logout drops the caller's session entry and invalidates their current
// token, whichever applies.
func (s *IdentityService) Logout(identity, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if identity != "" {
		delete(s.sessions, identity)
	}
	if token != "" {
		delete(s.tokens, token)
	}
}

// SwitchMode changes the auth mode and clears both registries. Every caller
// has to log in again afterwards; pre-switch tokens resolve to no identity.
func (s *IdentityService) SwitchMode(mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.SetAuthMode(mode)
	s.sessions = make(map[string]models.Session)
	s.tokens = make(map[string]models.Token)
}

// Link builds a mode-aware internal link. In token mode the current token
// travels as a query parameter; in cookie mode the path is returned as-is.
func (s *IdentityService) Link(path, token string) string {
	if s.cfg.AuthMode() == config.AuthModeToken && token != "" {
		return path + "?token=" + token
	}
	return path
}

// SessionCount and TokenCount exist for the config page and for tests.
func (s *IdentityService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *IdentityService) TokenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

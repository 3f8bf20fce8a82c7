package credential

import (
	"sync"
	"time"

	"video-uploader/domain/repository"
	"video-uploader/infrastructure/logger"

	"github.com/golang-jwt/jwt"
)

// Store is the single process-wide credential slot. Reads happen from every
// authenticated operation; writes only at login/logout, so last-write-wins is
// acceptable and a plain RWMutex is enough.
type Store struct {
	mu    sync.RWMutex
	token string
}

func NewStore() repository.ICredential {
	return &Store{}
}

// Get returns the current bearer token. A token whose JWT exp claim is in
// the past counts as absent and is dropped, forcing re-authentication.
func (s *Store) Get() (string, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return "", false
	}
	if expired(token) {
		logger.GetLogger().Info("Stored token expired; clearing credential")
		s.Clear()
		return "", false
	}
	return token, true
}

func (s *Store) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// expired inspects the exp claim without verifying the signature; the
// backend verifies tokens, the client only detects stale ones. Opaque
// non-JWT tokens are assumed live.
func expired(token string) bool {
	var claims jwt.StandardClaims
	if _, _, err := new(jwt.Parser).ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt > 0 && time.Now().Unix() >= claims.ExpiresAt
}

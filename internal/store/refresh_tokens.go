package store

import (
	"sync"
	"time"

	"prepsquad/internal/models"
)

// RefreshTokenStore holds outstanding refresh tokens. Tokens are single-use:
// Redeem removes the token whether or not it is still valid.
type RefreshTokenStore struct {
	mu     sync.Mutex
	tokens map[string]models.RefreshToken
}

func NewRefreshTokenStore() *RefreshTokenStore {
	return &RefreshTokenStore{tokens: make(map[string]models.RefreshToken)}
}

func (s *RefreshTokenStore) Save(token, userID string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = models.RefreshToken{Token: token, UserID: userID, ExpiresAt: expiresAt}
}

// Redeem returns the user id the token was issued to and deletes it.
func (s *RefreshTokenStore) Redeem(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tokens[token]
	if !ok {
		return "", ErrTokenNotFound
	}
	delete(s.tokens, token)
	if t.ExpiresAt.Before(time.Now()) {
		return "", ErrTokenExpired
	}
	return t.UserID, nil
}

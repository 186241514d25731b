package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenStore_RedeemIsSingleUse(t *testing.T) {
	s := NewRefreshTokenStore()
	s.Save("tok1", "user-1", time.Now().Add(time.Hour))

	userID, err := s.Redeem("tok1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = s.Redeem("tok1")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRefreshTokenStore_Expired(t *testing.T) {
	s := NewRefreshTokenStore()
	s.Save("tok2", "user-2", time.Now().Add(-time.Minute))

	_, err := s.Redeem("tok2")
	assert.ErrorIs(t, err, ErrTokenExpired)

	// expired tokens are consumed too
	_, err = s.Redeem("tok2")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRefreshTokenStore_Unknown(t *testing.T) {
	s := NewRefreshTokenStore()

	_, err := s.Redeem("never-issued")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

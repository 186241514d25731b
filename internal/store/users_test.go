package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_Create(t *testing.T) {
	s := NewUserStore()

	u, err := s.Create("alice@x.com", "Alice", "hash1")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@x.com", u.Email)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, []string{}, u.Skills)
	assert.Equal(t, []string{}, u.PrepGoals)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestUserStore_Create_DuplicateEmail(t *testing.T) {
	s := NewUserStore()

	first, err := s.Create("alice@x.com", "Alice", "hash1")
	require.NoError(t, err)

	_, err = s.Create("alice@x.com", "Impostor", "hash2")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// first registration untouched
	got, err := s.GetByEmail("alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "hash1", got.PasswordHash)
}

func TestUserStore_GetByID(t *testing.T) {
	s := NewUserStore()

	u, err := s.Create("bob@x.com", "Bob", "h")
	require.NoError(t, err)

	got, err := s.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", got.Email)

	_, err = s.GetByID("no-such-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStore_UpdateProfile_PartialFields(t *testing.T) {
	s := NewUserStore()

	u, err := s.Create("carol@x.com", "Carol", "h")
	require.NoError(t, err)

	bio := "grinding leetcode"
	skills := []string{"go", "sql"}
	_, err = s.UpdateProfile(u.ID, ProfileUpdate{Bio: &bio, Skills: &skills})
	require.NoError(t, err)

	// a second update touching only one field leaves the rest alone
	linkedin := "https://linkedin.com/in/carol"
	got, err := s.UpdateProfile(u.ID, ProfileUpdate{LinkedinURL: &linkedin})
	require.NoError(t, err)

	assert.Equal(t, "grinding leetcode", got.Bio)
	assert.Equal(t, []string{"go", "sql"}, got.Skills)
	assert.Equal(t, "https://linkedin.com/in/carol", got.LinkedinURL)
	assert.Equal(t, []string{}, got.PrepGoals)
	assert.Empty(t, got.AvatarURL)
}

func TestUserStore_UpdateProfile_UnknownUser(t *testing.T) {
	s := NewUserStore()

	bio := "x"
	_, err := s.UpdateProfile("missing", ProfileUpdate{Bio: &bio})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStore_ReturnsCopies(t *testing.T) {
	s := NewUserStore()

	u, err := s.Create("dan@x.com", "Dan", "h")
	require.NoError(t, err)

	u.Name = "mutated"
	u.Skills = append(u.Skills, "rust")

	got, err := s.GetByEmail("dan@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Dan", got.Name)
	assert.Equal(t, []string{}, got.Skills)
}

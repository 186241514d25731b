// Package store holds the in-memory state of the service. Each store owns
// its map and guards it with a mutex; callers get copies, never the stored
// records themselves.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"prepsquad/internal/models"
)

// UserStore is keyed by email, the registration-unique field. Lookups by id
// scan the values, which is fine at the volumes this service holds.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{byEmail: make(map[string]*models.User)}
}

// ProfileUpdate carries the fields a profile update may change. Nil fields
// are left untouched.
type ProfileUpdate struct {
	Bio         *string
	AvatarURL   *string
	Skills      *[]string
	PrepGoals   *[]string
	LinkedinURL *string
	GithubURL   *string
}

func (s *UserStore) Create(email, name, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, ErrEmailTaken
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Skills:       []string{},
		PrepGoals:    []string{},
		CreatedAt:    time.Now().UTC(),
	}
	s.byEmail[email] = u
	return cloneUser(u), nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (s *UserStore) GetByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, ErrUserNotFound
}

// UpdateProfile overwrites only the fields supplied in upd and returns the
// updated record.
func (s *UserStore) UpdateProfile(id string, upd ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.byEmail {
		if u.ID != id {
			continue
		}
		if upd.Bio != nil {
			u.Bio = *upd.Bio
		}
		if upd.AvatarURL != nil {
			u.AvatarURL = *upd.AvatarURL
		}
		if upd.Skills != nil {
			u.Skills = append([]string{}, (*upd.Skills)...)
		}
		if upd.PrepGoals != nil {
			u.PrepGoals = append([]string{}, (*upd.PrepGoals)...)
		}
		if upd.LinkedinURL != nil {
			u.LinkedinURL = *upd.LinkedinURL
		}
		if upd.GithubURL != nil {
			u.GithubURL = *upd.GithubURL
		}
		return cloneUser(u), nil
	}
	return nil, ErrUserNotFound
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Skills = append([]string{}, u.Skills...)
	c.PrepGoals = append([]string{}, u.PrepGoals...)
	return &c
}

package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio"`
	AvatarURL    string    `json:"avatar_url"`
	Skills       []string  `json:"skills"`
	PrepGoals    []string  `json:"prep_goals"`
	LinkedinURL  string    `json:"linkedin_url"`
	GithubURL    string    `json:"github_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the subset of a user record safe to return to any caller.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

// Profile is the full user view minus the password hash.
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	Skills      []string  `json:"skills"`
	PrepGoals   []string  `json:"prep_goals"`
	LinkedinURL string    `json:"linkedin_url"`
	GithubURL   string    `json:"github_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		Skills:      u.Skills,
		PrepGoals:   u.PrepGoals,
		LinkedinURL: u.LinkedinURL,
		GithubURL:   u.GithubURL,
		CreatedAt:   u.CreatedAt,
	}
}

package auth

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"prepsquad/internal/models"
	"prepsquad/internal/store"
	"prepsquad/internal/utils"
)

type RegisterHandler struct {
	Users         *store.UserStore
	Tokens        *store.RefreshTokenStore
	JWTSecret     string
	JWTTTLHrs     int
	RefreshTTLHrs int
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type AuthResponse struct {
	Message      string            `json:"message"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	User         models.PublicUser `json:"user"`
}

// ServeHTTP handles POST /api/auth/register
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		utils.Error(w, http.StatusBadRequest, "email, password and name are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := h.Users.Create(req.Email, req.Name, hash)
	if err == store.ErrEmailTaken {
		utils.Error(w, http.StatusBadRequest, "User already exists")
		return
	} else if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	access, refresh, err := issueTokenPair(h.Tokens, user.ID, h.JWTSecret, h.JWTTTLHrs, h.RefreshTTLHrs)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.JSON(w, http.StatusCreated, AuthResponse{
		Message:      "User registered successfully",
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user.Public(),
	})
}

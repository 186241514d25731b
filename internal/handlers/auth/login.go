package auth

import (
	"encoding/json"
	"net/http"

	"prepsquad/internal/store"
	"prepsquad/internal/utils"
)

type LoginHandler struct {
	Users         *store.UserStore
	Tokens        *store.RefreshTokenStore
	JWTSecret     string
	JWTTTLHrs     int
	RefreshTTLHrs int
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /api/auth/login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Unknown email and wrong password must be indistinguishable.
	user, err := h.Users.GetByEmail(req.Email)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		utils.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	access, refresh, err := issueTokenPair(h.Tokens, user.ID, h.JWTSecret, h.JWTTTLHrs, h.RefreshTTLHrs)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.JSON(w, http.StatusOK, AuthResponse{
		Message:      "Login successful",
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user.Public(),
	})
}

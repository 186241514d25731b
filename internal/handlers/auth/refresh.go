package auth

import (
	"encoding/json"
	"net/http"

	"prepsquad/internal/store"
	"prepsquad/internal/utils"
)

type RefreshHandler struct {
	Tokens        *store.RefreshTokenStore
	JWTSecret     string
	JWTTTLHrs     int
	RefreshTTLHrs int
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ServeHTTP handles POST /api/auth/refresh. The presented refresh token is
// consumed and a new pair is issued in its place.
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RefreshToken == "" {
		utils.Error(w, http.StatusBadRequest, "refresh_token is required")
		return
	}

	userID, err := h.Tokens.Redeem(req.RefreshToken)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	access, refresh, err := issueTokenPair(h.Tokens, userID, h.JWTSecret, h.JWTTTLHrs, h.RefreshTTLHrs)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.JSON(w, http.StatusOK, RefreshResponse{AccessToken: access, RefreshToken: refresh})
}

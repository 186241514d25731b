package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"prepsquad/internal/middleware"
	"prepsquad/internal/store"
	"prepsquad/internal/utils"
)

type GetProfileHandler struct {
	Users *store.UserStore
}

// ServeHTTP handles GET /api/users/{id}/profile
func (h *GetProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.Error(w, http.StatusBadRequest, "user id required in path")
		return
	}

	u, err := h.Users.GetByID(id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"profile": u.Profile()})
}

type UpdateProfileHandler struct {
	Users *store.UserStore
}

type UpdateProfileRequest struct {
	Bio         *string   `json:"bio,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	PrepGoals   *[]string `json:"prep_goals,omitempty"`
	LinkedinURL *string   `json:"linkedin_url,omitempty"`
	GithubURL   *string   `json:"github_url,omitempty"`
}

// ServeHTTP handles PUT /api/users/profile. Only the caller's own profile
// can be updated; fields absent from the body keep their current values.
func (h *UpdateProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.Users.UpdateProfile(userID, store.ProfileUpdate{
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		Skills:      req.Skills,
		PrepGoals:   req.PrepGoals,
		LinkedinURL: req.LinkedinURL,
		GithubURL:   req.GithubURL,
	})
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "User not found")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"profile": u.Profile(),
	})
}

package user

import (
	"net/http"

	"prepsquad/internal/middleware"
	"prepsquad/internal/store"
	"prepsquad/internal/utils"
)

type MeHandler struct {
	Users *store.UserStore
}

// ServeHTTP handles GET /api/auth/me
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// A structurally valid token whose subject no longer resolves is still
	// unauthenticated.
	u, err := h.Users.GetByID(userID)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "User not found")
		return
	}

	utils.JSON(w, http.StatusOK, u.Public())
}

package group

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"prepsquad/internal/middleware"
	"prepsquad/internal/store"
	"prepsquad/internal/utils"
)

type JoinGroupHandler struct {
	Groups *store.GroupStore
}

// ServeHTTP handles POST /api/groups/{id}/join. Joining a group the caller
// already belongs to is a no-op.
func (h *JoinGroupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	groupID := chi.URLParam(r, "id")
	if groupID == "" {
		utils.Error(w, http.StatusBadRequest, "group id required in path")
		return
	}

	g, err := h.Groups.Join(groupID, userID)
	if err == store.ErrGroupNotFound {
		utils.Error(w, http.StatusNotFound, "Group not found")
		return
	} else if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to join group")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Joined group successfully",
		"group":   g,
	})
}

package group

import (
	"encoding/json"
	"net/http"

	"prepsquad/internal/middleware"
	"prepsquad/internal/store"
	"prepsquad/internal/utils"
)

type CreateGroupHandler struct {
	Groups *store.GroupStore
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PrepType    string `json:"prep_type"`
}

// ServeHTTP handles POST /api/groups
func (h *CreateGroupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.PrepType == "" {
		utils.Error(w, http.StatusBadRequest, "prep_type is required")
		return
	}

	g, err := h.Groups.Create(req.Name, req.Description, req.PrepType, userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create group")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Group created successfully",
		"group":   g,
	})
}

package group

import (
	"net/http"

	"prepsquad/internal/store"
	"prepsquad/internal/utils"
)

type ListGroupsHandler struct {
	Groups *store.GroupStore
}

// ServeHTTP handles GET /api/groups with an optional ?prep_type= filter.
func (h *ListGroupsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	prepType := r.URL.Query().Get("prep_type")

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"groups": h.Groups.List(prepType),
	})
}

package handlers

import (
	"net/http"

	"prepsquad/internal/utils"
)

// HealthCheck handles GET /api/health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "PrepSquad API is running",
	})
}

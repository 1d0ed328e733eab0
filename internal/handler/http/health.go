package http

import (
	"net/http"

	"github.com/chatnest/api/internal/utils"
	"github.com/chatnest/api/models"
)

// health answers liveness probes and the API root.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "Working fine go ahead",
	}, http.StatusOK)
}

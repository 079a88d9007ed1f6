package http

import (
	"net/http"

	"github.com/paveldk/go-blog-api/internal/utils"
	"github.com/paveldk/go-blog-api/models"
)

// health answers the root path with a small service banner, useful for
// load-balancer checks and for humans poking at the API.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Message: "blog API is running",
	}, http.StatusOK)
}

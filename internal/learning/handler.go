package learning

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geowiz-backend/internal/shared/server/middleware"
	"geowiz-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches learning routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/learning/insights", h.insights)
	rg.GET("/learning/recommendations", h.recommendations)
}

func (h *Handler) insights(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	insights, err := h.Svc.Insights(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute insights", nil)
		return
	}
	respond.JSON(c, http.StatusOK, insights)
}

func (h *Handler) recommendations(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	recs, err := h.Svc.Recommendations(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute recommendations", nil)
		return
	}
	respond.JSON(c, http.StatusOK, recs)
}

package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"geowiz-backend/internal/game"
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

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.start)
	rg.GET("/sessions", h.history)
	rg.GET("/sessions/:id", h.get)
	rg.POST("/sessions/:id/complete", h.complete)
}

type startRequest struct {
	Mode   string `json:"mode"`
	Region string `json:"region"`
}

func (h *Handler) start(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	mode, err := game.ParseMode(req.Mode)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	region, err := game.ParseRegion(req.Region)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	session, err := h.Svc.Start(c.Request.Context(), userID, mode, region)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start session", nil)
		}
		return
	}

	c.Set("sessionId", session.ID)
	respond.JSON(c, http.StatusCreated, ToResponse(session))
}

func (h *Handler) history(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.History(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list sessions", nil)
		return
	}

	resp := make([]SessionResponse, 0, len(list))
	for _, s := range list {
		resp = append(resp, ToResponse(s))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("sessionId", id)

	session, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch session", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, ToResponse(session))
}

func (h *Handler) complete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("sessionId", id)

	session, err := h.Svc.Complete(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to complete session", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, ToResponse(session))
}

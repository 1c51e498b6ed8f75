package answers

import (
	"errors"
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

// RegisterRoutes attaches answer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/answers", h.submit)
}

type submitRequest struct {
	SessionID  string `json:"sessionId"`
	QuestionID string `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
	TimeSpent  *int   `json:"timeSpent"`
}

func (h *Handler) submit(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	c.Set("sessionId", req.SessionID)
	c.Set("questionId", req.QuestionID)

	res, err := h.Svc.Submit(c.Request.Context(), userID, SubmitRequest{
		SessionID:  req.SessionID,
		QuestionID: req.QuestionID,
		UserAnswer: req.UserAnswer,
		TimeSpent:  req.TimeSpent,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId and questionId are required", nil)
		case errors.Is(err, ErrSessionNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		case errors.Is(err, ErrQuestionNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "question not found", nil)
		case errors.Is(err, ErrSessionCompleted):
			respond.Error(c, http.StatusConflict, "conflict", "session already completed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit answer", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(res))
}

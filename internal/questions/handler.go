package questions

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"geowiz-backend/internal/game"
	"geowiz-backend/internal/shared/server/respond"
)

const maxVisualUploadSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches question routes to the router group. Visuals
// live under /media because the list route already claims the segments
// after /questions.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions/:mode/:region", h.list)
	rg.POST("/media/:id", h.uploadVisual)
	rg.GET("/media/:id", h.visual)
}

func (h *Handler) list(c *gin.Context) {
	mode, err := game.ParseMode(c.Param("mode"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	region, err := game.ParseRegion(c.Param("region"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit > 50 {
		limit = 50
	}

	qs, err := h.Svc.List(c.Request.Context(), mode, region, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list questions", nil)
		return
	}

	resp := make([]QuestionResponse, 0, len(qs))
	for _, q := range qs {
		resp = append(resp, toResponse(q))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) uploadVisual(c *gin.Context) {
	id := c.Param("id")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxVisualUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	visualType := c.PostForm("visualType")

	q, err := h.Svc.UploadVisual(c.Request.Context(), id, visualType, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "question not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload visual", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(q))
}

func (h *Handler) visual(c *gin.Context) {
	id := c.Param("id")

	rc, err := h.Svc.OpenVisual(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoVisual):
			respond.Error(c, http.StatusNotFound, "not_found", "visual not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open visual", nil)
		}
		return
	}
	defer rc.Close()

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		// Response already started; nothing safe to write.
		return
	}
}

package questions

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"studyhub-backend/internal/shared/server/middleware"
	"studyhub-backend/internal/shared/server/respond"
)

const maxImageSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches question routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", h.list)
	rg.POST("/questions", middleware.RequireUser(), h.ask)
}

func (h *Handler) ask(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize)

	question := c.PostForm("question")

	var image io.Reader
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read image", nil)
			return
		}
		defer file.Close()
		image = file
	}

	q, err := h.Svc.Ask(c.Request.Context(), AskInput{
		Question: question,
		AskedBy:  middleware.DisplayNameFromContext(c),
		Image:    image,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "ask_failed", err.Error(), nil)
		}
		return
	}

	c.Set("questionId", q.ID)
	respond.JSON(c, http.StatusCreated, toResponse(q))
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list questions", nil)
		return
	}

	resp := make([]QuestionResponse, 0, len(out))
	for _, q := range out {
		resp = append(resp, toResponse(q))
	}
	respond.JSON(c, http.StatusOK, resp)
}

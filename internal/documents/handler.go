package documents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studyhub-backend/internal/shared/server/middleware"
	"studyhub-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents", h.list)
	rg.POST("/documents", middleware.RequireUser(), h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	title := c.PostForm("title")
	subject := c.PostForm("subject")

	fileHeader, fileErr := c.FormFile("file")
	if fileErr != nil || title == "" || subject == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrInvalidInput.Error(), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	doc, err := h.Svc.Upload(c.Request.Context(), UploadInput{
		Title:      title,
		Subject:    subject,
		FileName:   fileHeader.Filename,
		UploadedBy: middleware.DisplayNameFromContext(c),
		File:       file,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "upload_failed", err.Error(), nil)
		}
		return
	}

	c.Set("documentId", doc.ID)
	respond.JSON(c, http.StatusCreated, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	docs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		// Listing failures are reported, never coerced to an empty list.
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		return
	}

	docs = Filter(docs, c.Query("q"))

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc))
	}
	respond.JSON(c, http.StatusOK, resp)
}

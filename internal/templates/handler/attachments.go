package handler

import (
	"net/http"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateAttachmentRequest registers a file already uploaded to external
// storage; file_path is the storage key.
type CreateAttachmentRequest struct {
	TemplateID  uuid.UUID `json:"template_id" binding:"required"`
	FilePath    string    `json:"file_path" binding:"required,max=500"`
	Filename    string    `json:"filename" binding:"required,max=255"`
	ContentType string    `json:"content_type" binding:"required,max=100"`
}

func (h *Handler) HandleCreateAttachment(c *gin.Context) {
	var req CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	attachment, err := h.processor.CreateAttachment(c.Request.Context(), store.CreateTemplateAttachmentParams{
		TemplateID:  req.TemplateID,
		FilePath:    req.FilePath,
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

func (h *Handler) HandleListAttachments(c *gin.Context) {
	page, err := h.processor.ListAttachments(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetAttachment(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	attachment, err := h.processor.GetAttachment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachment)
}

func (h *Handler) HandleDeleteAttachment(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteAttachment(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

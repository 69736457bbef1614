package handler

import (
	"errors"
	"net/http"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"
	"github.com/rekarton-ge/client-crm/internal/templates/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.TemplateProcessor
	logger    *observability.Logger
}

func New(processor processor.TemplateProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateTemplateRequest represents the HTTP request for creating a template.
// is_html and is_active default to true when omitted.
type CreateTemplateRequest struct {
	Name        string         `json:"name" binding:"required,max=100"`
	Description *string        `json:"description,omitempty"`
	Type        string         `json:"type" binding:"required,oneof=email whatsapp"`
	Subject     *string        `json:"subject,omitempty" binding:"omitempty,max=255"`
	Body        string         `json:"body" binding:"required"`
	IsHTML      *bool          `json:"is_html,omitempty"`
	Variables   map[string]any `json:"variables,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
	CategoryIDs []uuid.UUID    `json:"category_ids,omitempty"`
}

type UpdateTemplateRequest struct {
	Name        *string        `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string        `json:"description,omitempty"`
	Type        *string        `json:"type,omitempty" binding:"omitempty,oneof=email whatsapp"`
	Subject     *string        `json:"subject,omitempty" binding:"omitempty,max=255"`
	Body        *string        `json:"body,omitempty" binding:"omitempty,min=1"`
	IsHTML      *bool          `json:"is_html,omitempty"`
	Variables   map[string]any `json:"variables,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
	CategoryIDs *[]uuid.UUID   `json:"category_ids,omitempty"`
}

// RenderTemplateRequest carries the variables substituted into the template
type RenderTemplateRequest struct {
	Context map[string]any `json:"context"`
}

func boolOrTrue(b *bool) bool {
	return b == nil || *b
}

func (h *Handler) HandleCreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	tmpl, err := h.processor.CreateTemplate(c.Request.Context(), store.CreateTemplateParams{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Subject:     req.Subject,
		Body:        req.Body,
		IsHTML:      boolOrTrue(req.IsHTML),
		Variables:   store.JSONB(req.Variables),
		IsActive:    boolOrTrue(req.IsActive),
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tmpl)
}

func (h *Handler) HandleListTemplates(c *gin.Context) {
	page, err := h.processor.ListTemplates(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetTemplate(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	tmpl, err := h.processor.GetTemplate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

func (h *Handler) HandleUpdateTemplate(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	tmpl, err := h.processor.UpdateTemplate(c.Request.Context(), id, store.UpdateTemplateParams{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Subject:     req.Subject,
		Body:        req.Body,
		IsHTML:      req.IsHTML,
		Variables:   store.JSONB(req.Variables),
		IsActive:    req.IsActive,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

func (h *Handler) HandleDeleteTemplate(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteTemplate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleRenderTemplate renders a template with the posted context
func (h *Handler) HandleRenderTemplate(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req RenderTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	rendered, err := h.processor.RenderTemplate(c.Request.Context(), id, req.Context)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rendered)
}

// HandleDuplicateTemplates copies every listed template
func (h *Handler) HandleDuplicateTemplates(c *gin.Context) {
	req, ok := httpkit.BindBulk(c)
	if !ok {
		return
	}

	copies, err := h.processor.DuplicateTemplates(c.Request.Context(), req.IDs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"duplicated": len(copies), "templates": copies})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrTemplateNotFound):
		apierrors.NotFound(c, "Template not found")
	case errors.Is(err, processor.ErrCategoryNotFound):
		apierrors.NotFound(c, "Template category not found")
	case errors.Is(err, processor.ErrAttachmentNotFound):
		apierrors.NotFound(c, "Template attachment not found")
	case errors.Is(err, processor.ErrCategoryAlreadyExists):
		apierrors.Conflict(c, "CATEGORY_EXISTS", "A category with this name already exists")
	case errors.Is(err, processor.ErrUnknownCategory):
		apierrors.BadRequest(c, "UNKNOWN_CATEGORY", "One or more categories do not exist")
	case errors.Is(err, processor.ErrUnknownTemplate):
		apierrors.BadRequest(c, "UNKNOWN_TEMPLATE", "Template does not exist")
	case errors.Is(err, processor.ErrInvalidTemplateSyntax):
		apierrors.BadRequest(c, "INVALID_TEMPLATE", err.Error())
	default:
		apierrors.RespondWithError(c, err)
	}
}

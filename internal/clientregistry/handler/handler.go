package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/clientregistry/processor"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ClientProcessor
	logger    *observability.Logger
}

func New(processor processor.ClientProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateClientRequest represents the HTTP request for creating a client
type CreateClientRequest struct {
	FirstName     string      `json:"first_name" binding:"required,max=100"`
	LastName      string      `json:"last_name" binding:"required,max=100"`
	Email         string      `json:"email" binding:"required,email"`
	Phone         *string     `json:"phone,omitempty" binding:"omitempty,max=20"`
	WhatsApp      *string     `json:"whatsapp,omitempty" binding:"omitempty,max=20"`
	Company       *string     `json:"company,omitempty" binding:"omitempty,max=100"`
	Position      *string     `json:"position,omitempty" binding:"omitempty,max=100"`
	Address       *string     `json:"address,omitempty"`
	Status        string      `json:"status" binding:"omitempty,oneof=active inactive lead prospect customer"`
	Source        *string     `json:"source,omitempty" binding:"omitempty,max=100"`
	Notes         *string     `json:"notes,omitempty"`
	LastContacted *time.Time  `json:"last_contacted,omitempty"`
	TagIDs        []uuid.UUID `json:"tag_ids,omitempty"`
}

// UpdateClientRequest represents the HTTP request for updating a client.
// Omitted fields are left unchanged; tag_ids replaces the tag set when present.
type UpdateClientRequest struct {
	FirstName     *string      `json:"first_name,omitempty" binding:"omitempty,min=1,max=100"`
	LastName      *string      `json:"last_name,omitempty" binding:"omitempty,min=1,max=100"`
	Email         *string      `json:"email,omitempty" binding:"omitempty,email"`
	Phone         *string      `json:"phone,omitempty" binding:"omitempty,max=20"`
	WhatsApp      *string      `json:"whatsapp,omitempty" binding:"omitempty,max=20"`
	Company       *string      `json:"company,omitempty" binding:"omitempty,max=100"`
	Position      *string      `json:"position,omitempty" binding:"omitempty,max=100"`
	Address       *string      `json:"address,omitempty"`
	Status        *string      `json:"status,omitempty" binding:"omitempty,oneof=active inactive lead prospect customer"`
	Source        *string      `json:"source,omitempty" binding:"omitempty,max=100"`
	Notes         *string      `json:"notes,omitempty"`
	LastContacted *time.Time   `json:"last_contacted,omitempty"`
	TagIDs        *[]uuid.UUID `json:"tag_ids,omitempty"`
}

// HandleCreateClient creates a new client
func (h *Handler) HandleCreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	client, err := h.processor.CreateClient(c.Request.Context(), store.CreateClientParams{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		WhatsApp:      req.WhatsApp,
		Company:       req.Company,
		Position:      req.Position,
		Address:       req.Address,
		Status:        req.Status,
		Source:        req.Source,
		Notes:         req.Notes,
		LastContacted: req.LastContacted,
		TagIDs:        req.TagIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// HandleListClients lists clients with filtering, search and ordering
func (h *Handler) HandleListClients(c *gin.Context) {
	page, err := h.processor.ListClients(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetClient(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	client, err := h.processor.GetClient(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) HandleUpdateClient(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	client, err := h.processor.UpdateClient(c.Request.Context(), id, store.UpdateClientParams{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		WhatsApp:      req.WhatsApp,
		Company:       req.Company,
		Position:      req.Position,
		Address:       req.Address,
		Status:        req.Status,
		Source:        req.Source,
		Notes:         req.Notes,
		LastContacted: req.LastContacted,
		TagIDs:        req.TagIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) HandleDeleteClient(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteClient(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrClientNotFound):
		apierrors.NotFound(c, "Client not found")
	case errors.Is(err, processor.ErrTagNotFound):
		apierrors.NotFound(c, "Client tag not found")
	case errors.Is(err, processor.ErrGroupNotFound):
		apierrors.NotFound(c, "Client group not found")
	case errors.Is(err, processor.ErrEmailAlreadyExists):
		apierrors.Conflict(c, "EMAIL_EXISTS", "A client with this email already exists")
	case errors.Is(err, processor.ErrTagAlreadyExists):
		apierrors.Conflict(c, "TAG_EXISTS", "A tag with this name already exists")
	case errors.Is(err, processor.ErrUnknownTag):
		apierrors.BadRequest(c, "UNKNOWN_TAG", "One or more tags do not exist")
	case errors.Is(err, processor.ErrUnknownClient):
		apierrors.BadRequest(c, "UNKNOWN_CLIENT", "One or more clients do not exist")
	default:
		apierrors.RespondWithError(c, err)
	}
}

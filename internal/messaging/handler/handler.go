package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/messaging/processor"
	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.MessageProcessor
	logger    *observability.Logger
}

func New(processor processor.MessageProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateMessageRequest represents the HTTP request for recording a message
type CreateMessageRequest struct {
	Type          string     `json:"type" binding:"required,oneof=email whatsapp"`
	Direction     string     `json:"direction" binding:"omitempty,oneof=incoming outgoing"`
	ClientID      *uuid.UUID `json:"client_id,omitempty"`
	FromEmail     *string    `json:"from_email,omitempty" binding:"omitempty,email"`
	FromNumber    *string    `json:"from_number,omitempty" binding:"omitempty,max=20"`
	ToEmail       *string    `json:"to_email,omitempty" binding:"omitempty,email"`
	ToNumber      *string    `json:"to_number,omitempty" binding:"omitempty,max=20"`
	Subject       *string    `json:"subject,omitempty" binding:"omitempty,max=255"`
	Body          string     `json:"body" binding:"required"`
	Status        string     `json:"status" binding:"omitempty,oneof=draft queued sent delivered read failed"`
	StatusDetails *string    `json:"status_details,omitempty"`
	TrackOpens    *bool      `json:"track_opens,omitempty"`
	TrackClicks   *bool      `json:"track_clicks,omitempty"`
	CampaignID    *uuid.UUID `json:"campaign_id,omitempty"`
	TemplateID    *uuid.UUID `json:"template_id,omitempty"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
}

// UpdateMessageRequest represents the HTTP request for editing a message.
// sent_at, delivered_at and read_at move only through the mark actions.
type UpdateMessageRequest struct {
	Type          *string              `json:"type,omitempty" binding:"omitempty,oneof=email whatsapp"`
	Direction     *string              `json:"direction,omitempty" binding:"omitempty,oneof=incoming outgoing"`
	ClientID      httpkit.NullableUUID `json:"client_id"`
	FromEmail     *string              `json:"from_email,omitempty" binding:"omitempty,email"`
	FromNumber    *string              `json:"from_number,omitempty" binding:"omitempty,max=20"`
	ToEmail       *string              `json:"to_email,omitempty" binding:"omitempty,email"`
	ToNumber      *string              `json:"to_number,omitempty" binding:"omitempty,max=20"`
	Subject       *string              `json:"subject,omitempty" binding:"omitempty,max=255"`
	Body          *string              `json:"body,omitempty"`
	Status        *string              `json:"status,omitempty" binding:"omitempty,oneof=draft queued sent delivered read failed"`
	StatusDetails *string              `json:"status_details,omitempty"`
	TrackOpens    *bool                `json:"track_opens,omitempty"`
	TrackClicks   *bool                `json:"track_clicks,omitempty"`
	CampaignID    httpkit.NullableUUID `json:"campaign_id"`
	TemplateID    httpkit.NullableUUID `json:"template_id"`
	ScheduledAt   *time.Time           `json:"scheduled_at,omitempty"`
}

// MarkFailedRequest is a bulk request carrying the failure details
type MarkFailedRequest struct {
	IDs     []uuid.UUID `json:"ids" binding:"required,min=1"`
	Details *string     `json:"details,omitempty"`
}

func (h *Handler) HandleCreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	msg, err := h.processor.CreateMessage(c.Request.Context(), store.CreateMessageParams{
		Type:          req.Type,
		Direction:     req.Direction,
		ClientID:      req.ClientID,
		FromEmail:     req.FromEmail,
		FromNumber:    req.FromNumber,
		ToEmail:       req.ToEmail,
		ToNumber:      req.ToNumber,
		Subject:       req.Subject,
		Body:          req.Body,
		Status:        req.Status,
		StatusDetails: req.StatusDetails,
		TrackOpens:    req.TrackOpens == nil || *req.TrackOpens,
		TrackClicks:   req.TrackClicks == nil || *req.TrackClicks,
		CampaignID:    req.CampaignID,
		TemplateID:    req.TemplateID,
		ScheduledAt:   req.ScheduledAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *Handler) HandleListMessages(c *gin.Context) {
	page, err := h.processor.ListMessages(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetMessage(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	msg, err := h.processor.GetMessage(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) HandleUpdateMessage(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	msg, err := h.processor.UpdateMessage(c.Request.Context(), id, store.UpdateMessageParams{
		Type:          req.Type,
		Direction:     req.Direction,
		ClientID:      req.ClientID.Ref(),
		FromEmail:     req.FromEmail,
		FromNumber:    req.FromNumber,
		ToEmail:       req.ToEmail,
		ToNumber:      req.ToNumber,
		Subject:       req.Subject,
		Body:          req.Body,
		Status:        req.Status,
		StatusDetails: req.StatusDetails,
		TrackOpens:    req.TrackOpens,
		TrackClicks:   req.TrackClicks,
		CampaignID:    req.CampaignID.Ref(),
		TemplateID:    req.TemplateID.Ref(),
		ScheduledAt:   req.ScheduledAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) HandleDeleteMessage(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteMessage(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleMarkSent(c *gin.Context) {
	h.handleMark(c, h.processor.MarkSent)
}

func (h *Handler) HandleMarkDelivered(c *gin.Context) {
	h.handleMark(c, h.processor.MarkDelivered)
}

func (h *Handler) HandleMarkRead(c *gin.Context) {
	h.handleMark(c, h.processor.MarkRead)
}

func (h *Handler) handleMark(c *gin.Context, mark func(ctx context.Context, ids []uuid.UUID) ([]store.Message, error)) {
	req, ok := httpkit.BindBulk(c)
	if !ok {
		return
	}

	msgs, err := mark(c.Request.Context(), req.IDs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(msgs), "messages": msgs})
}

// HandleMarkFailed marks the listed messages failed with optional details
func (h *Handler) HandleMarkFailed(c *gin.Context) {
	var req MarkFailedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	msgs, err := h.processor.MarkFailed(c.Request.Context(), req.IDs, req.Details)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(msgs), "messages": msgs})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrMessageNotFound):
		apierrors.NotFound(c, "Message not found")
	case errors.Is(err, processor.ErrAttachmentNotFound):
		apierrors.NotFound(c, "Message attachment not found")
	case errors.Is(err, processor.ErrEventNotFound):
		apierrors.NotFound(c, "Message event not found")
	case errors.Is(err, processor.ErrInvalidReference):
		apierrors.BadRequest(c, "INVALID_REFERENCE", "Message references a client, campaign or template that does not exist")
	case errors.Is(err, processor.ErrUnknownMessage):
		apierrors.BadRequest(c, "UNKNOWN_MESSAGE", "Message does not exist")
	case errors.Is(err, processor.ErrMissingRecipient):
		apierrors.BadRequest(c, "MISSING_RECIPIENT", "An email message needs to_email and a whatsapp message needs to_number")
	default:
		apierrors.RespondWithError(c, err)
	}
}

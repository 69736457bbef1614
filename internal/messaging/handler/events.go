package handler

import (
	"net/http"
	"time"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateEventRequest struct {
	MessageID  uuid.UUID      `json:"message_id" binding:"required"`
	EventType  string         `json:"event_type" binding:"required,oneof=open click bounce complaint delivery read"`
	OccurredAt *time.Time     `json:"occurred_at,omitempty"`
	IPAddress  *string        `json:"ip_address,omitempty" binding:"omitempty,ip"`
	UserAgent  *string        `json:"user_agent,omitempty"`
	URL        *string        `json:"url,omitempty" binding:"omitempty,url"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// HandleCreateEvent appends an event; events cannot be edited or deleted
func (h *Handler) HandleCreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	event, err := h.processor.RecordEvent(c.Request.Context(), store.CreateMessageEventParams{
		MessageID:  req.MessageID,
		EventType:  req.EventType,
		OccurredAt: req.OccurredAt,
		IPAddress:  req.IPAddress,
		UserAgent:  req.UserAgent,
		URL:        req.URL,
		Metadata:   store.JSONB(req.Metadata),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *Handler) HandleListEvents(c *gin.Context) {
	page, err := h.processor.ListEvents(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetEvent(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	event, err := h.processor.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

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

type CreateEngagementRequest struct {
	ClientID               uuid.UUID  `json:"client_id" binding:"required"`
	EmailSentCount         int        `json:"email_sent_count" binding:"gte=0"`
	EmailOpenCount         int        `json:"email_open_count" binding:"gte=0"`
	EmailClickCount        int        `json:"email_click_count" binding:"gte=0"`
	WhatsAppSentCount      int        `json:"whatsapp_sent_count" binding:"gte=0"`
	WhatsAppDeliveredCount int        `json:"whatsapp_delivered_count" binding:"gte=0"`
	WhatsAppReadCount      int        `json:"whatsapp_read_count" binding:"gte=0"`
	LastEmailSent          *time.Time `json:"last_email_sent,omitempty"`
	LastEmailOpened        *time.Time `json:"last_email_opened,omitempty"`
	LastEmailClicked       *time.Time `json:"last_email_clicked,omitempty"`
	LastWhatsAppSent       *time.Time `json:"last_whatsapp_sent,omitempty"`
	LastWhatsAppDelivered  *time.Time `json:"last_whatsapp_delivered,omitempty"`
	LastWhatsAppRead       *time.Time `json:"last_whatsapp_read,omitempty"`
}

// UpdateEngagementRequest edits counters and timestamps. The score is left
// stale until calculate-score runs.
type UpdateEngagementRequest struct {
	EmailSentCount         *int       `json:"email_sent_count,omitempty" binding:"omitempty,gte=0"`
	EmailOpenCount         *int       `json:"email_open_count,omitempty" binding:"omitempty,gte=0"`
	EmailClickCount        *int       `json:"email_click_count,omitempty" binding:"omitempty,gte=0"`
	WhatsAppSentCount      *int       `json:"whatsapp_sent_count,omitempty" binding:"omitempty,gte=0"`
	WhatsAppDeliveredCount *int       `json:"whatsapp_delivered_count,omitempty" binding:"omitempty,gte=0"`
	WhatsAppReadCount      *int       `json:"whatsapp_read_count,omitempty" binding:"omitempty,gte=0"`
	LastEmailSent          *time.Time `json:"last_email_sent,omitempty"`
	LastEmailOpened        *time.Time `json:"last_email_opened,omitempty"`
	LastEmailClicked       *time.Time `json:"last_email_clicked,omitempty"`
	LastWhatsAppSent       *time.Time `json:"last_whatsapp_sent,omitempty"`
	LastWhatsAppDelivered  *time.Time `json:"last_whatsapp_delivered,omitempty"`
	LastWhatsAppRead       *time.Time `json:"last_whatsapp_read,omitempty"`
}

func (h *Handler) HandleCreateEngagement(c *gin.Context) {
	var req CreateEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	row, err := h.processor.CreateEngagement(c.Request.Context(), store.CreateClientEngagementParams{
		ClientID: req.ClientID,
		Counters: store.EngagementCounters{
			EmailSentCount:         req.EmailSentCount,
			EmailOpenCount:         req.EmailOpenCount,
			EmailClickCount:        req.EmailClickCount,
			WhatsAppSentCount:      req.WhatsAppSentCount,
			WhatsAppDeliveredCount: req.WhatsAppDeliveredCount,
			WhatsAppReadCount:      req.WhatsAppReadCount,
		},
		LastEmailSent:         req.LastEmailSent,
		LastEmailOpened:       req.LastEmailOpened,
		LastEmailClicked:      req.LastEmailClicked,
		LastWhatsAppSent:      req.LastWhatsAppSent,
		LastWhatsAppDelivered: req.LastWhatsAppDelivered,
		LastWhatsAppRead:      req.LastWhatsAppRead,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) HandleListEngagement(c *gin.Context) {
	page, err := h.processor.ListEngagement(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetEngagement(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	row, err := h.processor.GetEngagement(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) HandleUpdateEngagement(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req UpdateEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	row, err := h.processor.UpdateEngagement(c.Request.Context(), id, store.UpdateClientEngagementParams{
		EmailSentCount:         req.EmailSentCount,
		EmailOpenCount:         req.EmailOpenCount,
		EmailClickCount:        req.EmailClickCount,
		WhatsAppSentCount:      req.WhatsAppSentCount,
		WhatsAppDeliveredCount: req.WhatsAppDeliveredCount,
		WhatsAppReadCount:      req.WhatsAppReadCount,
		LastEmailSent:          req.LastEmailSent,
		LastEmailOpened:        req.LastEmailOpened,
		LastEmailClicked:       req.LastEmailClicked,
		LastWhatsAppSent:       req.LastWhatsAppSent,
		LastWhatsAppDelivered:  req.LastWhatsAppDelivered,
		LastWhatsAppRead:       req.LastWhatsAppRead,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) HandleDeleteEngagement(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteEngagement(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleTopEngaged(c *gin.Context) {
	rows, err := h.processor.TopEngaged(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) HandleCalculateScores(c *gin.Context) {
	req, ok := httpkit.BindBulk(c)
	if !ok {
		return
	}

	rows, err := h.processor.CalculateScores(c.Request.Context(), req.IDs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(rows), "engagement": rows})
}

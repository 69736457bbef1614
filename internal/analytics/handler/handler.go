package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rekarton-ge/client-crm/internal/analytics/processor"
	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateAnalyticsRequest represents the HTTP request for recording a daily bucket
type CreateAnalyticsRequest struct {
	MessageType      string     `json:"message_type" binding:"required,oneof=email whatsapp"`
	Date             string     `json:"date" binding:"required,datetime=2006-01-02"`
	CampaignID       *uuid.UUID `json:"campaign_id,omitempty"`
	SentCount        int        `json:"sent_count" binding:"gte=0"`
	DeliveredCount   int        `json:"delivered_count" binding:"gte=0"`
	OpenCount        int        `json:"open_count" binding:"gte=0"`
	ClickCount       int        `json:"click_count" binding:"gte=0"`
	UniqueOpenCount  int        `json:"unique_open_count" binding:"gte=0"`
	UniqueClickCount int        `json:"unique_click_count" binding:"gte=0"`
	BounceCount      int        `json:"bounce_count" binding:"gte=0"`
	ComplaintCount   int        `json:"complaint_count" binding:"gte=0"`
}

// UpdateAnalyticsRequest edits raw counters. Rates are recomputed only by
// the recalculate-rates action.
type UpdateAnalyticsRequest struct {
	SentCount        *int `json:"sent_count,omitempty" binding:"omitempty,gte=0"`
	DeliveredCount   *int `json:"delivered_count,omitempty" binding:"omitempty,gte=0"`
	OpenCount        *int `json:"open_count,omitempty" binding:"omitempty,gte=0"`
	ClickCount       *int `json:"click_count,omitempty" binding:"omitempty,gte=0"`
	UniqueOpenCount  *int `json:"unique_open_count,omitempty" binding:"omitempty,gte=0"`
	UniqueClickCount *int `json:"unique_click_count,omitempty" binding:"omitempty,gte=0"`
	BounceCount      *int `json:"bounce_count,omitempty" binding:"omitempty,gte=0"`
	ComplaintCount   *int `json:"complaint_count,omitempty" binding:"omitempty,gte=0"`
}

func (h *Handler) HandleCreateAnalytics(c *gin.Context) {
	var req CreateAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	// validated by the datetime binding above
	date, _ := time.Parse(dateLayout, req.Date)

	row, err := h.processor.CreateAnalytics(c.Request.Context(), store.CreateMessageAnalyticsParams{
		MessageType: req.MessageType,
		Date:        date,
		CampaignID:  req.CampaignID,
		Counters: store.AnalyticsCounters{
			SentCount:        req.SentCount,
			DeliveredCount:   req.DeliveredCount,
			OpenCount:        req.OpenCount,
			ClickCount:       req.ClickCount,
			UniqueOpenCount:  req.UniqueOpenCount,
			UniqueClickCount: req.UniqueClickCount,
			BounceCount:      req.BounceCount,
			ComplaintCount:   req.ComplaintCount,
		},
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) HandleListAnalytics(c *gin.Context) {
	page, err := h.processor.ListAnalytics(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetAnalytics(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	row, err := h.processor.GetAnalytics(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) HandleUpdateAnalytics(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req UpdateAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	row, err := h.processor.UpdateAnalytics(c.Request.Context(), id, store.UpdateMessageAnalyticsParams{
		SentCount:        req.SentCount,
		DeliveredCount:   req.DeliveredCount,
		OpenCount:        req.OpenCount,
		ClickCount:       req.ClickCount,
		UniqueOpenCount:  req.UniqueOpenCount,
		UniqueClickCount: req.UniqueClickCount,
		BounceCount:      req.BounceCount,
		ComplaintCount:   req.ComplaintCount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) HandleDeleteAnalytics(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteAnalytics(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleSummary aggregates every bucket matching the list filters
func (h *Handler) HandleSummary(c *gin.Context) {
	summary, err := h.processor.Summary(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) HandleRecalculateRates(c *gin.Context) {
	req, ok := httpkit.BindBulk(c)
	if !ok {
		return
	}

	rows, err := h.processor.RecalculateRates(c.Request.Context(), req.IDs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(rows), "analytics": rows})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrAnalyticsNotFound):
		apierrors.NotFound(c, "Message analytics not found")
	case errors.Is(err, processor.ErrAnalyticsAlreadyExists):
		apierrors.Conflict(c, "ANALYTICS_EXISTS", "Analytics for this message type, date and campaign already exist")
	case errors.Is(err, processor.ErrEngagementNotFound):
		apierrors.NotFound(c, "Client engagement not found")
	case errors.Is(err, processor.ErrEngagementExists):
		apierrors.Conflict(c, "ENGAGEMENT_EXISTS", "Engagement for this client already exists")
	case errors.Is(err, processor.ErrReportNotFound):
		apierrors.NotFound(c, "Report not found")
	case errors.Is(err, processor.ErrUnknownCampaign):
		apierrors.BadRequest(c, "UNKNOWN_CAMPAIGN", "Campaign does not exist")
	case errors.Is(err, processor.ErrUnknownClient):
		apierrors.BadRequest(c, "UNKNOWN_CLIENT", "Client does not exist")
	case errors.Is(err, processor.ErrUnknownReference):
		apierrors.BadRequest(c, "INVALID_REFERENCE", "Report references a campaign or client that does not exist")
	case errors.Is(err, processor.ErrInvalidPeriod):
		apierrors.BadRequest(c, "INVALID_PERIOD", "period_end must not be before period_start")
	default:
		apierrors.RespondWithError(c, err)
	}
}

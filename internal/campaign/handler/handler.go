package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/campaign/processor"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name               string         `json:"name" binding:"required,min=1,max=255"`
	Description        *string        `json:"description,omitempty"`
	Type               string         `json:"type" binding:"required,oneof=email whatsapp mixed"`
	ClientGroupID      *uuid.UUID     `json:"client_group_id,omitempty"`
	ClientIDs          []uuid.UUID    `json:"client_ids,omitempty"`
	EmailTemplateID    *uuid.UUID     `json:"email_template_id,omitempty"`
	WhatsAppTemplateID *uuid.UUID     `json:"whatsapp_template_id,omitempty"`
	IsScheduled        bool           `json:"is_scheduled"`
	ScheduledStart     *time.Time     `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time     `json:"scheduled_end,omitempty"`
	Frequency          string         `json:"frequency" binding:"omitempty,oneof=once daily weekly monthly custom"`
	CustomSchedule     map[string]any `json:"custom_schedule,omitempty"`
	Status             string         `json:"status" binding:"omitempty,oneof=draft scheduled active paused completed cancelled"`
	MaxMessagesPerDay  *int           `json:"max_messages_per_day,omitempty" binding:"omitempty,gte=1"`
}

// UpdateCampaignRequest represents the HTTP request for updating a campaign.
// Counters and started_at/completed_at are read-only.
type UpdateCampaignRequest struct {
	Name               *string              `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description        *string              `json:"description,omitempty"`
	Type               *string              `json:"type,omitempty" binding:"omitempty,oneof=email whatsapp mixed"`
	ClientGroupID      httpkit.NullableUUID `json:"client_group_id"`
	ClientIDs          *[]uuid.UUID         `json:"client_ids,omitempty"`
	EmailTemplateID    httpkit.NullableUUID `json:"email_template_id"`
	WhatsAppTemplateID httpkit.NullableUUID `json:"whatsapp_template_id"`
	IsScheduled        *bool                `json:"is_scheduled,omitempty"`
	ScheduledStart     *time.Time           `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time           `json:"scheduled_end,omitempty"`
	Frequency          *string              `json:"frequency,omitempty" binding:"omitempty,oneof=once daily weekly monthly custom"`
	CustomSchedule     map[string]any       `json:"custom_schedule,omitempty"`
	Status             *string              `json:"status,omitempty" binding:"omitempty,oneof=draft scheduled active paused completed cancelled"`
	MaxMessagesPerDay  *int                 `json:"max_messages_per_day,omitempty" binding:"omitempty,gte=1"`
}

// HandleCreateCampaign creates a new campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(c.Request.Context(), store.CreateCampaignParams{
		Name:               req.Name,
		Description:        req.Description,
		Type:               req.Type,
		ClientGroupID:      req.ClientGroupID,
		ClientIDs:          req.ClientIDs,
		EmailTemplateID:    req.EmailTemplateID,
		WhatsAppTemplateID: req.WhatsAppTemplateID,
		IsScheduled:        req.IsScheduled,
		ScheduledStart:     req.ScheduledStart,
		ScheduledEnd:       req.ScheduledEnd,
		Frequency:          req.Frequency,
		CustomSchedule:     store.JSONB(req.CustomSchedule),
		Status:             req.Status,
		MaxMessagesPerDay:  req.MaxMessagesPerDay,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists campaigns with filtering, search and ordering
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	page, err := h.processor.ListCampaigns(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// HandleGetCampaign retrieves a campaign by ID
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// HandleUpdateCampaign updates a campaign
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaign(c.Request.Context(), id, store.UpdateCampaignParams{
		Name:               req.Name,
		Description:        req.Description,
		Type:               req.Type,
		ClientGroupID:      req.ClientGroupID.Ref(),
		ClientIDs:          req.ClientIDs,
		EmailTemplateID:    req.EmailTemplateID.Ref(),
		WhatsAppTemplateID: req.WhatsAppTemplateID.Ref(),
		IsScheduled:        req.IsScheduled,
		ScheduledStart:     req.ScheduledStart,
		ScheduledEnd:       req.ScheduledEnd,
		Frequency:          req.Frequency,
		CustomSchedule:     store.JSONB(req.CustomSchedule),
		Status:             req.Status,
		MaxMessagesPerDay:  req.MaxMessagesPerDay,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// HandleDeleteCampaign deletes a campaign
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCampaign(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleUpdateStatistics recounts the listed campaigns' message counters
func (h *Handler) HandleUpdateStatistics(c *gin.Context) {
	req, ok := httpkit.BindBulk(c)
	if !ok {
		return
	}

	campaigns, err := h.processor.UpdateStatistics(c.Request.Context(), req.IDs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(campaigns), "campaigns": campaigns})
}

// HandleDuplicateCampaigns clones the listed campaigns as drafts
func (h *Handler) HandleDuplicateCampaigns(c *gin.Context) {
	req, ok := httpkit.BindBulk(c)
	if !ok {
		return
	}

	copies, err := h.processor.DuplicateCampaigns(c.Request.Context(), req.IDs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"duplicated": len(copies), "campaigns": copies})
}

// HandleAction returns a handler applying one lifecycle action to the listed campaigns
func (h *Handler) HandleAction(action processor.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := httpkit.BindBulk(c)
		if !ok {
			return
		}

		n, err := h.processor.ApplyAction(c.Request.Context(), action, req.IDs)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": n})
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrScheduleNotFound):
		apierrors.NotFound(c, "Campaign schedule not found")
	case errors.Is(err, processor.ErrInvalidReference):
		apierrors.BadRequest(c, "INVALID_REFERENCE", "Campaign references a group, client or template that does not exist")
	case errors.Is(err, processor.ErrUnknownCampaign):
		apierrors.BadRequest(c, "UNKNOWN_CAMPAIGN", "Campaign does not exist")
	case errors.Is(err, processor.ErrInvalidDateRange):
		apierrors.BadRequest(c, "INVALID_DATE_RANGE", "scheduled_end must not be before scheduled_start")
	case errors.Is(err, processor.ErrInvalidTimeOfDay):
		apierrors.BadRequest(c, "INVALID_TIME_OF_DAY", "time_of_day must be HH:MM or HH:MM:SS")
	case errors.Is(err, processor.ErrInvalidDayOfWeek):
		apierrors.BadRequest(c, "INVALID_DAY_OF_WEEK", "days_of_week entries must be between 0 and 6")
	case errors.Is(err, processor.ErrInvalidTransition):
		apierrors.BadRequest(c, "INVALID_ACTION", "Unknown campaign action")
	default:
		apierrors.RespondWithError(c, err)
	}
}

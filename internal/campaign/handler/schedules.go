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

type CreateScheduleRequest struct {
	CampaignID    uuid.UUID  `json:"campaign_id" binding:"required"`
	ScheduleType  string     `json:"schedule_type" binding:"required,oneof=fixed recurring"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	DaysOfWeek    []int      `json:"days_of_week,omitempty"`
	TimeOfDay     *string    `json:"time_of_day,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
}

type UpdateScheduleRequest struct {
	ScheduleType  *string    `json:"schedule_type,omitempty" binding:"omitempty,oneof=fixed recurring"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	DaysOfWeek    []int      `json:"days_of_week,omitempty"`
	TimeOfDay     *string    `json:"time_of_day,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
}

func (h *Handler) HandleCreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	isActive := req.IsActive == nil || *req.IsActive
	schedule, err := h.processor.CreateSchedule(c.Request.Context(), store.CreateCampaignScheduleParams{
		CampaignID:    req.CampaignID,
		ScheduleType:  req.ScheduleType,
		ScheduledTime: req.ScheduledTime,
		DaysOfWeek:    store.IntList(req.DaysOfWeek),
		TimeOfDay:     req.TimeOfDay,
		IsActive:      isActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

func (h *Handler) HandleListSchedules(c *gin.Context) {
	page, err := h.processor.ListSchedules(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetSchedule(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	schedule, err := h.processor.GetSchedule(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *Handler) HandleUpdateSchedule(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	schedule, err := h.processor.UpdateSchedule(c.Request.Context(), id, store.UpdateCampaignScheduleParams{
		ScheduleType:  req.ScheduleType,
		ScheduledTime: req.ScheduledTime,
		DaysOfWeek:    store.IntList(req.DaysOfWeek),
		TimeOfDay:     req.TimeOfDay,
		IsActive:      req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *Handler) HandleDeleteSchedule(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteSchedule(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/httpkit"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CreateReportRequest struct {
	ReportType  string          `json:"report_type" binding:"required,oneof=daily weekly monthly campaign client custom"`
	Title       string          `json:"title" binding:"required,max=255"`
	Description *string         `json:"description,omitempty"`
	PeriodStart *string         `json:"period_start,omitempty" binding:"omitempty,datetime=2006-01-02"`
	PeriodEnd   *string         `json:"period_end,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CampaignID  *uuid.UUID      `json:"campaign_id,omitempty"`
	ClientID    *uuid.UUID      `json:"client_id,omitempty"`
	ReportData  json.RawMessage `json:"report_data" binding:"required"`
}

type UpdateReportRequest struct {
	ReportType  *string              `json:"report_type,omitempty" binding:"omitempty,oneof=daily weekly monthly campaign client custom"`
	Title       *string              `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string              `json:"description,omitempty"`
	PeriodStart *string              `json:"period_start,omitempty" binding:"omitempty,datetime=2006-01-02"`
	PeriodEnd   *string              `json:"period_end,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CampaignID  httpkit.NullableUUID `json:"campaign_id"`
	ClientID    httpkit.NullableUUID `json:"client_id"`
	ReportData  json.RawMessage      `json:"report_data,omitempty"`
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func (h *Handler) HandleCreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	report, err := h.processor.CreateReport(c.Request.Context(), store.CreateReportParams{
		ReportType:  req.ReportType,
		Title:       req.Title,
		Description: req.Description,
		PeriodStart: parseDate(req.PeriodStart),
		PeriodEnd:   parseDate(req.PeriodEnd),
		CampaignID:  req.CampaignID,
		ClientID:    req.ClientID,
		Data:        store.RawJSON(req.ReportData),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *Handler) HandleListReports(c *gin.Context) {
	page, err := h.processor.ListReports(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleGetReport(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	report, err := h.processor.GetReport(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) HandleRecentReports(c *gin.Context) {
	reports, err := h.processor.RecentReports(c.Request.Context(), httpkit.ListParams(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) HandleUpdateReport(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	report, err := h.processor.UpdateReport(c.Request.Context(), id, store.UpdateReportParams{
		ReportType:  req.ReportType,
		Title:       req.Title,
		Description: req.Description,
		PeriodStart: parseDate(req.PeriodStart),
		PeriodEnd:   parseDate(req.PeriodEnd),
		CampaignID:  req.CampaignID.Ref(),
		ClientID:    req.ClientID.Ref(),
		Data:        store.RawJSON(req.ReportData),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) HandleDeleteReport(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteReport(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleExportReport streams the report as an XLSX workbook
func (h *Handler) HandleExportReport(c *gin.Context) {
	id, ok := httpkit.ParseID(c)
	if !ok {
		return
	}

	filename, content, err := h.processor.ExportReport(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}

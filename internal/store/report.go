package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const reportColumns = `id, report_type, title, description, period_start, period_end, campaign_id, client_id, report_data, created_at, updated_at`

type CreateReportParams struct {
	ReportType  string
	Title       string
	Description *string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	CampaignID  *uuid.UUID
	ClientID    *uuid.UUID
	Data        RawJSON
}

type UpdateReportParams struct {
	ReportType  *string
	Title       *string
	Description *string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	CampaignID  NullableRef
	ClientID    NullableRef
	Data        RawJSON
}

var reportListSpec = listSpec{
	from:    "report_data",
	columns: reportColumns,
	filters: map[string]filterColumn{
		"report_type": {"report_type", filterText},
		"campaign":    {"campaign_id", filterNullableUUID},
		"client":      {"client_id", filterNullableUUID},
	},
	search: []string{"title", "description"},
	ordering: map[string]string{
		"created_at":   "created_at",
		"period_start": "period_start",
		"period_end":   "period_end",
	},
	defaultOrder: "created_at DESC",
	tiebreak:     "id",
}

const sqlCreateReport = `
INSERT INTO report_data (id, report_type, title, description, period_start, period_end, campaign_id, client_id, report_data, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + reportColumns

func (s *Store) CreateReport(ctx context.Context, params CreateReportParams) (ReportData, error) {
	ts := now()
	var report ReportData
	err := s.db.GetContext(ctx, &report, s.rebind(sqlCreateReport),
		newID(), params.ReportType, params.Title, params.Description, datePtr(params.PeriodStart),
		datePtr(params.PeriodEnd), params.CampaignID, params.ClientID, params.Data, ts, ts)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrInvalidReference) {
			return ReportData{}, err
		}
		s.logger.Error(ctx, "failed to create report", err)
		return ReportData{}, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

func (s *Store) GetReportByID(ctx context.Context, id uuid.UUID) (ReportData, error) {
	var report ReportData
	err := s.db.GetContext(ctx, &report, s.rebind(`SELECT `+reportColumns+` FROM report_data WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReportData{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get report", err)
		return ReportData{}, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

func (s *Store) ListReports(ctx context.Context, params ListParams) (Page[ReportData], error) {
	page, err := listPage[ReportData](ctx, s.db, s.rebind, reportListSpec, params)
	if err != nil && !errors.Is(err, ErrInvalidFilter) {
		s.logger.Error(ctx, "failed to list reports", err)
	}
	return page, err
}

// RecentReports returns the limit most recently created reports matching
// the list filters and search.
func (s *Store) RecentReports(ctx context.Context, params ListParams, limit int) ([]ReportData, error) {
	where, args, err := reportListSpec.where(params)
	if err != nil {
		return nil, err
	}
	reports := []ReportData{}
	query := `SELECT ` + reportColumns + ` FROM report_data` + where + ` ORDER BY created_at DESC, id LIMIT ?`
	if err := s.db.SelectContext(ctx, &reports, s.rebind(query), append(args, limit)...); err != nil {
		s.logger.Error(ctx, "failed to get recent reports", err)
		return nil, fmt.Errorf("failed to get recent reports: %w", err)
	}
	return reports, nil
}

const sqlUpdateReport = `
UPDATE report_data
SET report_type = COALESCE(?, report_type),
    title = COALESCE(?, title),
    description = COALESCE(?, description),
    period_start = COALESCE(?, period_start),
    period_end = COALESCE(?, period_end),
    campaign_id = CASE WHEN ? THEN NULL ELSE COALESCE(?, campaign_id) END,
    client_id = CASE WHEN ? THEN NULL ELSE COALESCE(?, client_id) END,
    report_data = COALESCE(?, report_data),
    updated_at = ?
WHERE id = ?
RETURNING ` + reportColumns

func (s *Store) UpdateReport(ctx context.Context, id uuid.UUID, params UpdateReportParams) (ReportData, error) {
	var report ReportData
	err := s.db.GetContext(ctx, &report, s.rebind(sqlUpdateReport),
		params.ReportType, params.Title, params.Description, datePtr(params.PeriodStart), datePtr(params.PeriodEnd),
		params.CampaignID.clears(), params.CampaignID.ID, params.ClientID.clears(), params.ClientID.ID,
		params.Data, now(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReportData{}, ErrNotFound
		}
		err = translateError(err)
		if errors.Is(err, ErrInvalidReference) {
			return ReportData{}, err
		}
		s.logger.Error(ctx, "failed to update report", err)
		return ReportData{}, fmt.Errorf("failed to update report: %w", err)
	}
	return report, nil
}

func (s *Store) DeleteReport(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM report_data WHERE id = ?`), id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete report", err)
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func datePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dateOnly(*t)
	return &d
}

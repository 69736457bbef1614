package processor

import (
	"context"
	"errors"
	"time"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

func reportFields(ctx context.Context, id uuid.UUID) context.Context {
	return observability.WithFields(ctx, observability.Field{Key: "report_id", Value: id.String()})
}

func validatePeriod(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidPeriod
	}
	return nil
}

// CreateReport stores a report snapshot. The payload is kept as given.
func (p *AnalyticsProcessor) CreateReport(ctx context.Context, params store.CreateReportParams) (store.ReportData, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "report_type", Value: params.ReportType})
	if err := validatePeriod(params.PeriodStart, params.PeriodEnd); err != nil {
		return store.ReportData{}, err
	}

	report, err := p.store.CreateReport(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return store.ReportData{}, ErrUnknownReference
		}
		p.logger.Error(ctx, "failed to create report", err)
		return store.ReportData{}, err
	}

	p.logger.Info(reportFields(ctx, report.ID), "report created")
	return report, nil
}

func (p *AnalyticsProcessor) GetReport(ctx context.Context, id uuid.UUID) (store.ReportData, error) {
	report, err := p.store.GetReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReportData{}, ErrReportNotFound
		}
		p.logger.Error(reportFields(ctx, id), "failed to get report", err)
		return store.ReportData{}, err
	}
	return report, nil
}

func (p *AnalyticsProcessor) ListReports(ctx context.Context, params store.ListParams) (store.Page[store.ReportData], error) {
	page, err := p.store.ListReports(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list reports", err)
	}
	return page, err
}

// RecentReports returns the five most recently created reports among those matching params.
func (p *AnalyticsProcessor) RecentReports(ctx context.Context, params store.ListParams) ([]store.ReportData, error) {
	reports, err := p.store.RecentReports(ctx, params, recentReportsLimit)
	if err != nil {
		if !errors.Is(err, store.ErrInvalidFilter) {
			p.logger.Error(ctx, "failed to get recent reports", err)
		}
		return nil, err
	}
	return reports, nil
}

func (p *AnalyticsProcessor) UpdateReport(ctx context.Context, id uuid.UUID, params store.UpdateReportParams) (store.ReportData, error) {
	ctx = reportFields(ctx, id)

	if params.PeriodStart != nil || params.PeriodEnd != nil {
		current, err := p.GetReport(ctx, id)
		if err != nil {
			return store.ReportData{}, err
		}
		start, end := current.PeriodStart, current.PeriodEnd
		if params.PeriodStart != nil {
			start = params.PeriodStart
		}
		if params.PeriodEnd != nil {
			end = params.PeriodEnd
		}
		if err := validatePeriod(start, end); err != nil {
			return store.ReportData{}, err
		}
	}

	report, err := p.store.UpdateReport(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.ReportData{}, ErrReportNotFound
		case errors.Is(err, store.ErrInvalidReference):
			return store.ReportData{}, ErrUnknownReference
		}
		p.logger.Error(ctx, "failed to update report", err)
		return store.ReportData{}, err
	}
	return report, nil
}

func (p *AnalyticsProcessor) DeleteReport(ctx context.Context, id uuid.UUID) error {
	ctx = reportFields(ctx, id)
	if err := p.store.DeleteReport(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrReportNotFound
		}
		p.logger.Error(ctx, "failed to delete report", err)
		return err
	}
	return nil
}

package processor

import (
	"context"
	"errors"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

var (
	ErrAnalyticsNotFound      = errors.New("message analytics not found")
	ErrAnalyticsAlreadyExists = errors.New("analytics for this message type, date and campaign already exist")
	ErrEngagementNotFound     = errors.New("client engagement not found")
	ErrEngagementExists       = errors.New("engagement for this client already exists")
	ErrReportNotFound         = errors.New("report not found")
	ErrUnknownCampaign        = errors.New("campaign does not exist")
	ErrUnknownClient          = errors.New("client does not exist")
	ErrUnknownReference       = errors.New("report references a campaign or client that does not exist")
	ErrInvalidPeriod          = errors.New("period_end must not be before period_start")
)

const (
	topEngagedLimit    = 10
	recentReportsLimit = 5
)

type AnalyticsProcessor struct {
	store  AnalyticsStore
	logger *observability.Logger
}

func New(store AnalyticsStore, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  store,
		logger: logger,
	}
}

func analyticsFields(ctx context.Context, id uuid.UUID) context.Context {
	return observability.WithFields(ctx, observability.Field{Key: "analytics_id", Value: id.String()})
}

// CreateAnalytics stores a bucket. Rates start at zero until recalculated.
func (p *AnalyticsProcessor) CreateAnalytics(ctx context.Context, params store.CreateMessageAnalyticsParams) (store.MessageAnalytics, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "message_type", Value: params.MessageType},
		observability.Field{Key: "date", Value: params.Date.Format("2006-01-02")},
	)

	row, err := p.store.CreateMessageAnalytics(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return store.MessageAnalytics{}, ErrAnalyticsAlreadyExists
		case errors.Is(err, store.ErrInvalidReference):
			return store.MessageAnalytics{}, ErrUnknownCampaign
		}
		p.logger.Error(ctx, "failed to create message analytics", err)
		return store.MessageAnalytics{}, err
	}
	return row, nil
}

func (p *AnalyticsProcessor) GetAnalytics(ctx context.Context, id uuid.UUID) (store.MessageAnalytics, error) {
	row, err := p.store.GetMessageAnalyticsByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.MessageAnalytics{}, ErrAnalyticsNotFound
		}
		p.logger.Error(analyticsFields(ctx, id), "failed to get message analytics", err)
		return store.MessageAnalytics{}, err
	}
	return row, nil
}

func (p *AnalyticsProcessor) ListAnalytics(ctx context.Context, params store.ListParams) (store.Page[store.MessageAnalytics], error) {
	page, err := p.store.ListMessageAnalytics(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list message analytics", err)
	}
	return page, err
}

// UpdateAnalytics changes raw counters only; rates stay as they were until
// the next recalculation.
func (p *AnalyticsProcessor) UpdateAnalytics(ctx context.Context, id uuid.UUID, params store.UpdateMessageAnalyticsParams) (store.MessageAnalytics, error) {
	ctx = analyticsFields(ctx, id)
	row, err := p.store.UpdateMessageAnalytics(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.MessageAnalytics{}, ErrAnalyticsNotFound
		}
		p.logger.Error(ctx, "failed to update message analytics", err)
		return store.MessageAnalytics{}, err
	}
	return row, nil
}

func (p *AnalyticsProcessor) DeleteAnalytics(ctx context.Context, id uuid.UUID) error {
	ctx = analyticsFields(ctx, id)
	if err := p.store.DeleteMessageAnalytics(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAnalyticsNotFound
		}
		p.logger.Error(ctx, "failed to delete message analytics", err)
		return err
	}
	return nil
}

// Summary sums sent and delivered and averages the delivery and open rates
// over every bucket matching the list filters.
func (p *AnalyticsProcessor) Summary(ctx context.Context, params store.ListParams) (store.AnalyticsSummary, error) {
	summary, err := p.store.SummarizeMessageAnalytics(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to summarize message analytics", err)
	}
	return summary, err
}

// RecalculateRates recomputes and persists the rates of every listed
// bucket. Unknown IDs are skipped. Running it twice changes nothing.
func (p *AnalyticsProcessor) RecalculateRates(ctx context.Context, ids []uuid.UUID) ([]store.MessageAnalytics, error) {
	updated := make([]store.MessageAnalytics, 0, len(ids))
	for _, id := range ids {
		rowCtx := analyticsFields(ctx, id)
		row, err := p.store.GetMessageAnalyticsByID(rowCtx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			p.logger.Error(rowCtx, "failed to load message analytics", err)
			return nil, err
		}

		row, err = p.store.UpdateMessageAnalyticsRates(rowCtx, id, RecalculateRates(row))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			p.logger.Error(rowCtx, "failed to update message analytics rates", err)
			return nil, err
		}
		updated = append(updated, row)
	}

	observability.RecordRecompute(observability.RecomputeAnalyticsRates, len(updated))
	return updated, nil
}

// RecalculateAllRates recomputes every bucket's rates.
func (p *AnalyticsProcessor) RecalculateAllRates(ctx context.Context) (int, error) {
	ids, err := p.store.ListMessageAnalyticsIDs(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list message analytics", err)
		return 0, err
	}
	updated, err := p.RecalculateRates(ctx, ids)
	if err != nil {
		return 0, err
	}
	return len(updated), nil
}

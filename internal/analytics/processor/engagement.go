package processor

import (
	"context"
	"errors"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

func engagementFields(ctx context.Context, id uuid.UUID) context.Context {
	return observability.WithFields(ctx, observability.Field{Key: "engagement_id", Value: id.String()})
}

// CreateEngagement stores the engagement row of a client. There is at most
// one per client; the score stays zero until calculated.
func (p *AnalyticsProcessor) CreateEngagement(ctx context.Context, params store.CreateClientEngagementParams) (store.ClientEngagement, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: params.ClientID.String()})

	row, err := p.store.CreateClientEngagement(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return store.ClientEngagement{}, ErrEngagementExists
		case errors.Is(err, store.ErrInvalidReference):
			return store.ClientEngagement{}, ErrUnknownClient
		}
		p.logger.Error(ctx, "failed to create client engagement", err)
		return store.ClientEngagement{}, err
	}
	return row, nil
}

func (p *AnalyticsProcessor) GetEngagement(ctx context.Context, id uuid.UUID) (store.ClientEngagement, error) {
	row, err := p.store.GetClientEngagementByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ClientEngagement{}, ErrEngagementNotFound
		}
		p.logger.Error(engagementFields(ctx, id), "failed to get client engagement", err)
		return store.ClientEngagement{}, err
	}
	return row, nil
}

func (p *AnalyticsProcessor) ListEngagement(ctx context.Context, params store.ListParams) (store.Page[store.ClientEngagement], error) {
	page, err := p.store.ListClientEngagement(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list client engagement", err)
	}
	return page, err
}

// TopEngaged returns the ten highest-scored clients among those matching params.
func (p *AnalyticsProcessor) TopEngaged(ctx context.Context, params store.ListParams) ([]store.ClientEngagement, error) {
	rows, err := p.store.TopEngagedClients(ctx, params, topEngagedLimit)
	if err != nil {
		if !errors.Is(err, store.ErrInvalidFilter) {
			p.logger.Error(ctx, "failed to get top engaged clients", err)
		}
		return nil, err
	}
	return rows, nil
}

func (p *AnalyticsProcessor) UpdateEngagement(ctx context.Context, id uuid.UUID, params store.UpdateClientEngagementParams) (store.ClientEngagement, error) {
	ctx = engagementFields(ctx, id)
	row, err := p.store.UpdateClientEngagement(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ClientEngagement{}, ErrEngagementNotFound
		}
		p.logger.Error(ctx, "failed to update client engagement", err)
		return store.ClientEngagement{}, err
	}
	return row, nil
}

func (p *AnalyticsProcessor) DeleteEngagement(ctx context.Context, id uuid.UUID) error {
	ctx = engagementFields(ctx, id)
	if err := p.store.DeleteClientEngagement(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEngagementNotFound
		}
		p.logger.Error(ctx, "failed to delete client engagement", err)
		return err
	}
	return nil
}

// CalculateScores recomputes and persists the engagement score of every
// listed row. Unknown IDs are skipped.
func (p *AnalyticsProcessor) CalculateScores(ctx context.Context, ids []uuid.UUID) ([]store.ClientEngagement, error) {
	updated := make([]store.ClientEngagement, 0, len(ids))
	for _, id := range ids {
		rowCtx := engagementFields(ctx, id)
		row, err := p.store.GetClientEngagementByID(rowCtx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			p.logger.Error(rowCtx, "failed to load client engagement", err)
			return nil, err
		}

		row, err = p.store.UpdateEngagementScore(rowCtx, id, EngagementScore(row))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			p.logger.Error(rowCtx, "failed to update engagement score", err)
			return nil, err
		}
		updated = append(updated, row)
	}

	observability.RecordRecompute(observability.RecomputeEngagementScore, len(updated))
	return updated, nil
}

// CalculateAllScores recomputes every client's engagement score.
func (p *AnalyticsProcessor) CalculateAllScores(ctx context.Context) (int, error) {
	ids, err := p.store.ListClientEngagementIDs(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list client engagement", err)
		return 0, err
	}
	updated, err := p.CalculateScores(ctx, ids)
	if err != nil {
		return 0, err
	}
	return len(updated), nil
}

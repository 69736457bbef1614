package processor

import (
	"context"
	"errors"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// ApplyAction moves every listed campaign through a lifecycle transition:
// start sets active and stamps started_at, pause sets paused, complete sets
// completed and stamps completed_at. Returns the number of campaigns changed.
func (p *CampaignProcessor) ApplyAction(ctx context.Context, action Action, ids []uuid.UUID) (int64, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "action", Value: string(action)},
		observability.Field{Key: "requested", Value: len(ids)},
	)

	var (
		status string
		stamp  store.CampaignTimestamp
	)
	switch action {
	case ActionStart:
		status, stamp = store.CampaignStatusActive, store.CampaignTimestampStarted
	case ActionPause:
		status, stamp = store.CampaignStatusPaused, store.CampaignTimestampNone
	case ActionComplete:
		status, stamp = store.CampaignStatusCompleted, store.CampaignTimestampCompleted
	default:
		return 0, ErrInvalidTransition
	}

	updated, err := p.store.SetCampaignsStatus(ctx, ids, status, stamp, p.now())
	if err != nil {
		p.logger.Error(ctx, "failed to change campaign status", err)
		return 0, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "updated", Value: updated}), "campaign status changed")
	return updated, nil
}

// UpdateStatistics recounts each campaign's messages by status and
// overwrites its counters. Unknown IDs are skipped.
func (p *CampaignProcessor) UpdateStatistics(ctx context.Context, ids []uuid.UUID) ([]store.Campaign, error) {
	updated := make([]store.Campaign, 0, len(ids))
	for _, id := range ids {
		campaign, err := p.updateStatistics(campaignFields(ctx, id), id)
		if err != nil {
			if errors.Is(err, ErrCampaignNotFound) {
				continue
			}
			return nil, err
		}
		updated = append(updated, campaign)
	}

	observability.RecordRecompute(observability.RecomputeCampaignStatistics, len(updated))
	return updated, nil
}

// UpdateAllStatistics recounts every campaign.
func (p *CampaignProcessor) UpdateAllStatistics(ctx context.Context) (int, error) {
	ids, err := p.store.ListCampaignIDs(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns for statistics", err)
		return 0, err
	}
	updated, err := p.UpdateStatistics(ctx, ids)
	if err != nil {
		return 0, err
	}
	return len(updated), nil
}

func (p *CampaignProcessor) updateStatistics(ctx context.Context, id uuid.UUID) (store.Campaign, error) {
	stats, err := p.store.CountCampaignMessages(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to count campaign messages", err)
		return store.Campaign{}, err
	}

	campaign, err := p.store.UpdateCampaignStatistics(ctx, id, stats)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign statistics", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// DuplicateCampaigns clones each campaign as a draft with the same audience,
// templates and schedules, zeroed counters and no lifecycle timestamps.
// Unknown IDs are skipped.
func (p *CampaignProcessor) DuplicateCampaigns(ctx context.Context, ids []uuid.UUID) ([]store.Campaign, error) {
	copies := make([]store.Campaign, 0, len(ids))
	for _, id := range ids {
		campaign, err := p.store.DuplicateCampaign(ctx, id, DuplicateSuffix)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				p.logger.Warn(campaignFields(ctx, id), "skipping duplicate of missing campaign")
				continue
			}
			p.logger.Error(campaignFields(ctx, id), "failed to duplicate campaign", err)
			return nil, err
		}
		copies = append(copies, campaign)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "requested", Value: len(ids)},
		observability.Field{Key: "duplicated", Value: len(copies)},
	), "campaigns duplicated")
	return copies, nil
}

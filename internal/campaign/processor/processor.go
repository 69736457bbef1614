package processor

import (
	"context"
	"errors"
	"time"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrScheduleNotFound  = errors.New("campaign schedule not found")
	ErrInvalidReference  = errors.New("campaign references a group, client or template that does not exist")
	ErrUnknownCampaign   = errors.New("campaign does not exist")
	ErrInvalidDateRange  = errors.New("scheduled_end must not be before scheduled_start")
	ErrInvalidTimeOfDay  = errors.New("time_of_day must be HH:MM or HH:MM:SS")
	ErrInvalidDayOfWeek  = errors.New("days_of_week entries must be between 0 and 6")
	ErrInvalidTransition = errors.New("unknown campaign action")
)

// DuplicateSuffix is appended to the name of every duplicated campaign.
const DuplicateSuffix = " (copy)"

// Action is a bulk lifecycle transition. Transitions are applied regardless
// of the campaign's current status.
type Action string

const (
	ActionStart    Action = "start"
	ActionPause    Action = "pause"
	ActionComplete Action = "complete"
)

type CampaignProcessor struct {
	store  CampaignStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store CampaignStore, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func campaignFields(ctx context.Context, id uuid.UUID) context.Context {
	return observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id.String()})
}

func validateDateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidDateRange
	}
	return nil
}

// CreateCampaign stores a campaign. Status defaults to draft and frequency to once.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_name", Value: params.Name},
		observability.Field{Key: "campaign_type", Value: params.Type},
	)

	if err := validateDateRange(params.ScheduledStart, params.ScheduledEnd); err != nil {
		return store.Campaign{}, err
	}
	if params.Status == "" {
		params.Status = store.CampaignStatusDraft
	}
	if params.Frequency == "" {
		params.Frequency = store.CampaignFrequencyOnce
	}

	campaign, err := p.store.CreateCampaign(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return store.Campaign{}, ErrInvalidReference
		}
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(campaignFields(ctx, campaign.ID), "campaign created successfully")
	return campaign, nil
}

// GetCampaign retrieves a campaign with its audience and schedules
func (p *CampaignProcessor) GetCampaign(ctx context.Context, id uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(campaignFields(ctx, id), "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

func (p *CampaignProcessor) ListCampaigns(ctx context.Context, params store.ListParams) (store.Page[store.Campaign], error) {
	page, err := p.store.ListCampaigns(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list campaigns", err)
	}
	return page, err
}

// UpdateCampaign applies a partial update. Counters and lifecycle
// timestamps are only changed by the dedicated actions.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, id uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error) {
	ctx = campaignFields(ctx, id)

	if params.ScheduledStart != nil || params.ScheduledEnd != nil {
		current, err := p.GetCampaign(ctx, id)
		if err != nil {
			return store.Campaign{}, err
		}
		start, end := current.ScheduledStart, current.ScheduledEnd
		if params.ScheduledStart != nil {
			start = params.ScheduledStart
		}
		if params.ScheduledEnd != nil {
			end = params.ScheduledEnd
		}
		if err := validateDateRange(start, end); err != nil {
			return store.Campaign{}, err
		}
	}

	campaign, err := p.store.UpdateCampaign(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Campaign{}, ErrCampaignNotFound
		case errors.Is(err, store.ErrInvalidReference):
			return store.Campaign{}, ErrInvalidReference
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign updated successfully")
	return campaign, nil
}

// DeleteCampaign removes a campaign and its schedules. Messages and
// analytics that referenced it are kept with the reference cleared.
func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	ctx = campaignFields(ctx, id)

	if err := p.store.DeleteCampaign(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete campaign", err)
		return err
	}

	p.logger.Info(ctx, "campaign deleted successfully")
	return nil
}

package processor

import (
	"context"
	"errors"
	"time"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

var timeOfDayLayouts = []string{"15:04", "15:04:05"}

func validateSchedule(daysOfWeek store.IntList, timeOfDay *string) error {
	for _, d := range daysOfWeek {
		if d < 0 || d > 6 {
			return ErrInvalidDayOfWeek
		}
	}
	if timeOfDay == nil {
		return nil
	}
	for _, layout := range timeOfDayLayouts {
		if _, err := time.Parse(layout, *timeOfDay); err == nil {
			return nil
		}
	}
	return ErrInvalidTimeOfDay
}

func (p *CampaignProcessor) CreateSchedule(ctx context.Context, params store.CreateCampaignScheduleParams) (store.CampaignSchedule, error) {
	ctx = campaignFields(ctx, params.CampaignID)
	if err := validateSchedule(params.DaysOfWeek, params.TimeOfDay); err != nil {
		return store.CampaignSchedule{}, err
	}

	schedule, err := p.store.CreateCampaignSchedule(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return store.CampaignSchedule{}, ErrUnknownCampaign
		}
		p.logger.Error(ctx, "failed to create campaign schedule", err)
		return store.CampaignSchedule{}, err
	}
	return schedule, nil
}

func (p *CampaignProcessor) GetSchedule(ctx context.Context, id uuid.UUID) (store.CampaignSchedule, error) {
	schedule, err := p.store.GetCampaignScheduleByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignSchedule{}, ErrScheduleNotFound
		}
		p.logger.Error(ctx, "failed to get campaign schedule", err)
		return store.CampaignSchedule{}, err
	}
	return schedule, nil
}

func (p *CampaignProcessor) ListSchedules(ctx context.Context, params store.ListParams) (store.Page[store.CampaignSchedule], error) {
	page, err := p.store.ListCampaignSchedules(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list campaign schedules", err)
	}
	return page, err
}

func (p *CampaignProcessor) UpdateSchedule(ctx context.Context, id uuid.UUID, params store.UpdateCampaignScheduleParams) (store.CampaignSchedule, error) {
	if err := validateSchedule(params.DaysOfWeek, params.TimeOfDay); err != nil {
		return store.CampaignSchedule{}, err
	}

	schedule, err := p.store.UpdateCampaignSchedule(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignSchedule{}, ErrScheduleNotFound
		}
		p.logger.Error(ctx, "failed to update campaign schedule", err)
		return store.CampaignSchedule{}, err
	}
	return schedule, nil
}

func (p *CampaignProcessor) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	if err := p.store.DeleteCampaignSchedule(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrScheduleNotFound
		}
		p.logger.Error(ctx, "failed to delete campaign schedule", err)
		return err
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const campaignScheduleColumns = `id, campaign_id, schedule_type, scheduled_time, days_of_week, time_of_day, is_active, created_at, updated_at`

type CreateCampaignScheduleParams struct {
	CampaignID    uuid.UUID
	ScheduleType  string
	ScheduledTime *time.Time
	DaysOfWeek    IntList
	TimeOfDay     *string
	IsActive      bool
}

type UpdateCampaignScheduleParams struct {
	ScheduleType  *string
	ScheduledTime *time.Time
	DaysOfWeek    IntList
	TimeOfDay     *string
	IsActive      *bool
}

var campaignScheduleListSpec = listSpec{
	from:    "campaign_schedules",
	columns: campaignScheduleColumns,
	filters: map[string]filterColumn{
		"campaign":      {"campaign_id", filterUUID},
		"schedule_type": {"schedule_type", filterText},
		"is_active":     {"is_active", filterBool},
	},
	ordering: map[string]string{
		"scheduled_time": "scheduled_time",
		"created_at":     "created_at",
	},
	defaultOrder: "scheduled_time ASC, time_of_day ASC",
	tiebreak:     "id",
}

const sqlInsertCampaignSchedule = `
INSERT INTO campaign_schedules (id, campaign_id, schedule_type, scheduled_time, days_of_week, time_of_day, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (s *Store) CreateCampaignSchedule(ctx context.Context, params CreateCampaignScheduleParams) (CampaignSchedule, error) {
	var schedule CampaignSchedule
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var exists int
		if err := tx.GetContext(ctx, &exists, s.rebind(`SELECT COUNT(*) FROM campaigns WHERE id = ?`), params.CampaignID); err != nil {
			return err
		}
		if exists == 0 {
			return fmt.Errorf("%w: campaign %s", ErrInvalidReference, params.CampaignID)
		}
		ts := now()
		return tx.GetContext(ctx, &schedule, s.rebind(sqlInsertCampaignSchedule+` RETURNING `+campaignScheduleColumns),
			newID(), params.CampaignID, params.ScheduleType, params.ScheduledTime, params.DaysOfWeek,
			params.TimeOfDay, params.IsActive, ts, ts)
	})
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			return CampaignSchedule{}, err
		}
		s.logger.Error(ctx, "failed to create campaign schedule", err)
		return CampaignSchedule{}, fmt.Errorf("failed to create campaign schedule: %w", err)
	}
	return schedule, nil
}

func (s *Store) GetCampaignScheduleByID(ctx context.Context, id uuid.UUID) (CampaignSchedule, error) {
	var schedule CampaignSchedule
	err := s.db.GetContext(ctx, &schedule, s.rebind(`SELECT `+campaignScheduleColumns+` FROM campaign_schedules WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignSchedule{}, ErrNotFound
		}
		return CampaignSchedule{}, fmt.Errorf("failed to get campaign schedule: %w", err)
	}
	return schedule, nil
}

func (s *Store) ListCampaignSchedules(ctx context.Context, params ListParams) (Page[CampaignSchedule], error) {
	page, err := listPage[CampaignSchedule](ctx, s.db, s.rebind, campaignScheduleListSpec, params)
	if err != nil && !errors.Is(err, ErrInvalidFilter) {
		s.logger.Error(ctx, "failed to list campaign schedules", err)
	}
	return page, err
}

const sqlUpdateCampaignSchedule = `
UPDATE campaign_schedules
SET schedule_type = COALESCE(?, schedule_type),
    scheduled_time = COALESCE(?, scheduled_time),
    days_of_week = COALESCE(?, days_of_week),
    time_of_day = COALESCE(?, time_of_day),
    is_active = COALESCE(?, is_active),
    updated_at = ?
WHERE id = ?
RETURNING ` + campaignScheduleColumns

func (s *Store) UpdateCampaignSchedule(ctx context.Context, id uuid.UUID, params UpdateCampaignScheduleParams) (CampaignSchedule, error) {
	var schedule CampaignSchedule
	err := s.db.GetContext(ctx, &schedule, s.rebind(sqlUpdateCampaignSchedule),
		params.ScheduleType, params.ScheduledTime, params.DaysOfWeek, params.TimeOfDay, params.IsActive, now(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignSchedule{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign schedule", err)
		return CampaignSchedule{}, fmt.Errorf("failed to update campaign schedule: %w", err)
	}
	return schedule, nil
}

func (s *Store) DeleteCampaignSchedule(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return deleteByID(ctx, tx, s.rebind(`DELETE FROM campaign_schedules WHERE id = ?`), id)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error(ctx, "failed to delete campaign schedule", err)
		return fmt.Errorf("failed to delete campaign schedule: %w", err)
	}
	return err
}

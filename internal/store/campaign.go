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

const campaignColumns = `id, name, description, type, client_group_id, email_template_id, whatsapp_template_id,
is_scheduled, scheduled_start, scheduled_end, frequency, custom_schedule, status, max_messages_per_day,
total_recipients, sent_count, delivered_count, read_count, error_count, created_at, updated_at, started_at, completed_at`

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name               string
	Description        *string
	Type               string
	ClientGroupID      *uuid.UUID
	ClientIDs          []uuid.UUID
	EmailTemplateID    *uuid.UUID
	WhatsAppTemplateID *uuid.UUID
	IsScheduled        bool
	ScheduledStart     *time.Time
	ScheduledEnd       *time.Time
	Frequency          string
	CustomSchedule     JSONB
	Status             string
	MaxMessagesPerDay  *int
}

// UpdateCampaignParams represents parameters for updating a campaign.
// Counters and lifecycle timestamps are not writable here.
type UpdateCampaignParams struct {
	Name               *string
	Description        *string
	Type               *string
	ClientGroupID      NullableRef
	ClientIDs          *[]uuid.UUID
	EmailTemplateID    NullableRef
	WhatsAppTemplateID NullableRef
	IsScheduled        *bool
	ScheduledStart     *time.Time
	ScheduledEnd       *time.Time
	Frequency          *string
	CustomSchedule     JSONB
	Status             *string
	MaxMessagesPerDay  *int
}

var campaignListSpec = listSpec{
	from:    "campaigns",
	columns: campaignColumns,
	filters: map[string]filterColumn{
		"type":         {"type", filterText},
		"status":       {"status", filterText},
		"frequency":    {"frequency", filterText},
		"is_scheduled": {"is_scheduled", filterBool},
		"client_group": {"client_group_id", filterNullableUUID},
	},
	search: []string{"name", "description"},
	ordering: map[string]string{
		"created_at":   "created_at",
		"started_at":   "started_at",
		"completed_at": "completed_at",
		"name":         "name",
	},
	defaultOrder: "created_at DESC",
	tiebreak:     "id",
}

const sqlCreateCampaign = `
INSERT INTO campaigns (id, name, description, type, client_group_id, email_template_id, whatsapp_template_id,
    is_scheduled, scheduled_start, scheduled_end, frequency, custom_schedule, status, max_messages_per_day,
    total_recipients, sent_count, delivered_count, read_count, error_count, created_at, updated_at, started_at, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, 0, 0, 0, ?, ?, NULL, NULL)
RETURNING ` + campaignColumns

// CreateCampaign creates a campaign and links its explicit audience
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		ts := now()
		if err := tx.GetContext(ctx, &campaign, s.rebind(sqlCreateCampaign),
			newID(), params.Name, params.Description, params.Type, params.ClientGroupID,
			params.EmailTemplateID, params.WhatsAppTemplateID, params.IsScheduled,
			params.ScheduledStart, params.ScheduledEnd, params.Frequency, params.CustomSchedule,
			params.Status, params.MaxMessagesPerDay, ts, ts); err != nil {
			return translateError(err)
		}
		if err := s.replaceLinks(ctx, tx, "campaign_clients", "campaign_id", "client_id", campaign.ID, params.ClientIDs); err != nil {
			return err
		}
		return s.loadCampaignRelations(ctx, tx, &campaign)
	})
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			return Campaign{}, err
		}
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

// GetCampaignByID retrieves a campaign with its audience and schedules
func (s *Store) GetCampaignByID(ctx context.Context, id uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, s.rebind(`SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	if err := s.loadCampaignRelations(ctx, s.db, &campaign); err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

// ListCampaigns retrieves campaigns with pagination and filters
func (s *Store) ListCampaigns(ctx context.Context, params ListParams) (Page[Campaign], error) {
	page, err := listPage[Campaign](ctx, s.db, s.rebind, campaignListSpec, params)
	if err != nil {
		if !errors.Is(err, ErrInvalidFilter) {
			s.logger.Error(ctx, "failed to list campaigns", err)
		}
		return page, err
	}
	for i := range page.Results {
		if err := s.loadCampaignRelations(ctx, s.db, &page.Results[i]); err != nil {
			return Page[Campaign]{}, err
		}
	}
	return page, nil
}

// ListCampaignIDs returns every campaign id, oldest first.
func (s *Store) ListCampaignIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := s.db.SelectContext(ctx, &ids, `SELECT id FROM campaigns ORDER BY created_at, id`); err != nil {
		s.logger.Error(ctx, "failed to list campaign ids", err)
		return nil, fmt.Errorf("failed to list campaign ids: %w", err)
	}
	return ids, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET name = COALESCE(?, name),
    description = COALESCE(?, description),
    type = COALESCE(?, type),
    client_group_id = CASE WHEN ? THEN NULL ELSE COALESCE(?, client_group_id) END,
    email_template_id = CASE WHEN ? THEN NULL ELSE COALESCE(?, email_template_id) END,
    whatsapp_template_id = CASE WHEN ? THEN NULL ELSE COALESCE(?, whatsapp_template_id) END,
    is_scheduled = COALESCE(?, is_scheduled),
    scheduled_start = COALESCE(?, scheduled_start),
    scheduled_end = COALESCE(?, scheduled_end),
    frequency = COALESCE(?, frequency),
    custom_schedule = COALESCE(?, custom_schedule),
    status = COALESCE(?, status),
    max_messages_per_day = COALESCE(?, max_messages_per_day),
    updated_at = ?
WHERE id = ?
RETURNING ` + campaignColumns

// UpdateCampaign applies a partial update; a non-nil ClientIDs replaces the audience
func (s *Store) UpdateCampaign(ctx context.Context, id uuid.UUID, params UpdateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &campaign, s.rebind(sqlUpdateCampaign),
			params.Name, params.Description, params.Type,
			params.ClientGroupID.clears(), params.ClientGroupID.ID,
			params.EmailTemplateID.clears(), params.EmailTemplateID.ID,
			params.WhatsAppTemplateID.clears(), params.WhatsAppTemplateID.ID, params.IsScheduled, params.ScheduledStart, params.ScheduledEnd,
			params.Frequency, params.CustomSchedule, params.Status, params.MaxMessagesPerDay, now(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translateError(err)
		}
		if params.ClientIDs != nil {
			if err := s.replaceLinks(ctx, tx, "campaign_clients", "campaign_id", "client_id", id, *params.ClientIDs); err != nil {
				return err
			}
		}
		return s.loadCampaignRelations(ctx, tx, &campaign)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidReference) {
			return Campaign{}, err
		}
		s.logger.Error(ctx, "failed to update campaign", err)
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

// DeleteCampaign removes a campaign with its schedules. Messages, analytics
// and reports keep their rows with the campaign reference cleared.
func (s *Store) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		stmts := []string{
			`UPDATE messages SET campaign_id = NULL WHERE campaign_id = ?`,
			`UPDATE message_analytics SET campaign_id = NULL WHERE campaign_id = ?`,
			`UPDATE report_data SET campaign_id = NULL WHERE campaign_id = ?`,
			`DELETE FROM campaign_schedules WHERE campaign_id = ?`,
			`DELETE FROM campaign_clients WHERE campaign_id = ?`,
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, s.rebind(stmt), id); err != nil {
				return err
			}
		}
		return deleteByID(ctx, tx, s.rebind(`DELETE FROM campaigns WHERE id = ?`), id)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error(ctx, "failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return err
}

const sqlCountCampaignMessagesByStatus = `
SELECT
    COUNT(*) AS total_recipients,
    COALESCE(SUM(CASE WHEN status = 'sent' THEN 1 ELSE 0 END), 0) AS sent_count,
    COALESCE(SUM(CASE WHEN status = 'delivered' THEN 1 ELSE 0 END), 0) AS delivered_count,
    COALESCE(SUM(CASE WHEN status = 'read' THEN 1 ELSE 0 END), 0) AS read_count,
    COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0) AS error_count
FROM messages
WHERE campaign_id = ?`

// CountCampaignMessages tallies a campaign's messages by status. Each
// bucket counts only messages currently in that exact status.
func (s *Store) CountCampaignMessages(ctx context.Context, campaignID uuid.UUID) (CampaignStatistics, error) {
	var stats CampaignStatistics
	if err := s.db.GetContext(ctx, &stats, s.rebind(sqlCountCampaignMessagesByStatus), campaignID); err != nil {
		s.logger.Error(ctx, "failed to count campaign messages", err)
		return CampaignStatistics{}, fmt.Errorf("failed to count campaign messages: %w", err)
	}
	return stats, nil
}

const sqlUpdateCampaignStatistics = `
UPDATE campaigns
SET total_recipients = ?, sent_count = ?, delivered_count = ?, read_count = ?, error_count = ?, updated_at = ?
WHERE id = ?
RETURNING ` + campaignColumns

// UpdateCampaignStatistics overwrites the five aggregate counters
func (s *Store) UpdateCampaignStatistics(ctx context.Context, id uuid.UUID, stats CampaignStatistics) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, s.rebind(sqlUpdateCampaignStatistics),
		stats.TotalRecipients, stats.SentCount, stats.DeliveredCount, stats.ReadCount, stats.ErrorCount, now(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign statistics", err)
		return Campaign{}, fmt.Errorf("failed to update campaign statistics: %w", err)
	}
	return campaign, nil
}

// CampaignTimestamp names the lifecycle column a status change stamps.
type CampaignTimestamp string

const (
	CampaignTimestampNone      CampaignTimestamp = ""
	CampaignTimestampStarted   CampaignTimestamp = "started_at"
	CampaignTimestampCompleted CampaignTimestamp = "completed_at"
)

// SetCampaignsStatus moves every listed campaign to status, stamping the
// given lifecycle column with at. Returns the number of rows changed.
func (s *Store) SetCampaignsStatus(ctx context.Context, ids []uuid.UUID, status string, stamp CampaignTimestamp, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var (
		query string
		args  []interface{}
		err   error
	)
	switch stamp {
	case CampaignTimestampStarted, CampaignTimestampCompleted:
		query, args, err = inClause(`UPDATE campaigns SET status = ?, `+string(stamp)+` = ?, updated_at = ? WHERE id IN (?)`, ids, status, at.UTC(), now())
	case CampaignTimestampNone:
		query, args, err = inClause(`UPDATE campaigns SET status = ?, updated_at = ? WHERE id IN (?)`, ids, status, now())
	default:
		return 0, fmt.Errorf("unknown campaign timestamp %q", stamp)
	}
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, s.rebind(query), args...)
	if err != nil {
		s.logger.Error(ctx, "failed to set campaign status", err)
		return 0, fmt.Errorf("failed to set campaign status: %w", err)
	}
	return res.RowsAffected()
}

// DuplicateCampaign clones a campaign as a fresh draft: same audience and
// templates, zeroed counters, no lifecycle timestamps, cloned schedules.
func (s *Store) DuplicateCampaign(ctx context.Context, id uuid.UUID, suffix string) (Campaign, error) {
	var campaign Campaign
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var original Campaign
		if err := tx.GetContext(ctx, &original, s.rebind(`SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if err := s.loadCampaignRelations(ctx, tx, &original); err != nil {
			return err
		}

		ts := now()
		if err := tx.GetContext(ctx, &campaign, s.rebind(sqlCreateCampaign),
			newID(), original.Name+suffix, original.Description, original.Type, original.ClientGroupID,
			original.EmailTemplateID, original.WhatsAppTemplateID, original.IsScheduled,
			original.ScheduledStart, original.ScheduledEnd, original.Frequency, original.CustomSchedule,
			CampaignStatusDraft, original.MaxMessagesPerDay, ts, ts); err != nil {
			return err
		}
		if err := s.replaceLinks(ctx, tx, "campaign_clients", "campaign_id", "client_id", campaign.ID, original.ClientIDs); err != nil {
			return err
		}
		for _, sched := range original.Schedules {
			if _, err := tx.ExecContext(ctx, s.rebind(sqlInsertCampaignSchedule),
				newID(), campaign.ID, sched.ScheduleType, sched.ScheduledTime, sched.DaysOfWeek,
				sched.TimeOfDay, sched.IsActive, ts, ts); err != nil {
				return err
			}
		}
		return s.loadCampaignRelations(ctx, tx, &campaign)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Campaign{}, err
		}
		s.logger.Error(ctx, "failed to duplicate campaign", err)
		return Campaign{}, fmt.Errorf("failed to duplicate campaign: %w", err)
	}
	return campaign, nil
}

func (s *Store) loadCampaignRelations(ctx context.Context, q sqlx.QueryerContext, campaign *Campaign) error {
	campaign.ClientIDs = []uuid.UUID{}
	if err := sqlx.SelectContext(ctx, q, &campaign.ClientIDs,
		s.rebind(`SELECT client_id FROM campaign_clients WHERE campaign_id = ? ORDER BY client_id`), campaign.ID); err != nil {
		return fmt.Errorf("failed to load campaign clients: %w", err)
	}
	campaign.Schedules = []CampaignSchedule{}
	if err := sqlx.SelectContext(ctx, q, &campaign.Schedules,
		s.rebind(`SELECT `+campaignScheduleColumns+` FROM campaign_schedules WHERE campaign_id = ? ORDER BY scheduled_time, time_of_day, id`), campaign.ID); err != nil {
		return fmt.Errorf("failed to load campaign schedules: %w", err)
	}
	return nil
}

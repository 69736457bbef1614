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

const messageAnalyticsColumns = `id, message_type, date, campaign_id, sent_count, delivered_count, open_count, click_count,
unique_open_count, unique_click_count, bounce_count, complaint_count, delivery_rate, open_rate, click_rate, updated_at`

// AnalyticsCounters are the raw counters of one analytics bucket.
type AnalyticsCounters struct {
	SentCount        int
	DeliveredCount   int
	OpenCount        int
	ClickCount       int
	UniqueOpenCount  int
	UniqueClickCount int
	BounceCount      int
	ComplaintCount   int
}

type CreateMessageAnalyticsParams struct {
	MessageType string
	Date        time.Time
	CampaignID  *uuid.UUID
	Counters    AnalyticsCounters
}

type UpdateMessageAnalyticsParams struct {
	SentCount        *int
	DeliveredCount   *int
	OpenCount        *int
	ClickCount       *int
	UniqueOpenCount  *int
	UniqueClickCount *int
	BounceCount      *int
	ComplaintCount   *int
}

// AnalyticsRates are the three derived percentages of a bucket.
type AnalyticsRates struct {
	DeliveryRate float64
	OpenRate     float64
	ClickRate    float64
}

var messageAnalyticsListSpec = listSpec{
	from:    "message_analytics",
	columns: messageAnalyticsColumns,
	filters: map[string]filterColumn{
		"message_type": {"message_type", filterText},
		"campaign":     {"campaign_id", filterNullableUUID},
		"date":         {"date", filterDate},
	},
	ordering: map[string]string{
		"date":          "date",
		"sent_count":    "sent_count",
		"delivery_rate": "delivery_rate",
		"open_rate":     "open_rate",
	},
	defaultOrder: "date DESC",
	tiebreak:     "id",
}

const sqlCreateMessageAnalytics = `
INSERT INTO message_analytics (id, message_type, date, campaign_id, sent_count, delivered_count, open_count, click_count,
    unique_open_count, unique_click_count, bounce_count, complaint_count, delivery_rate, open_rate, click_rate, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, 0, ?)
RETURNING ` + messageAnalyticsColumns

const sqlGlobalBucketExists = `
SELECT EXISTS (SELECT 1 FROM message_analytics WHERE message_type = ? AND date = ? AND campaign_id IS NULL)`

// CreateMessageAnalytics creates a bucket; rates start at zero until recalculated.
func (s *Store) CreateMessageAnalytics(ctx context.Context, params CreateMessageAnalyticsParams) (MessageAnalytics, error) {
	c := params.Counters
	date := dateOnly(params.Date)
	var row MessageAnalytics
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		// The unique index only covers campaign buckets. Deleting a campaign
		// can leave several null buckets on one day, so the single global
		// bucket is enforced on create.
		if params.CampaignID == nil {
			var exists bool
			if err := tx.GetContext(ctx, &exists, s.rebind(sqlGlobalBucketExists), params.MessageType, date); err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%w: global bucket %s %s", ErrAlreadyExists, params.MessageType, date.Format(time.DateOnly))
			}
		}
		return tx.GetContext(ctx, &row, s.rebind(sqlCreateMessageAnalytics),
			newID(), params.MessageType, date, params.CampaignID,
			c.SentCount, c.DeliveredCount, c.OpenCount, c.ClickCount,
			c.UniqueOpenCount, c.UniqueClickCount, c.BounceCount, c.ComplaintCount, now())
	})
	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrAlreadyExists) || errors.Is(err, ErrInvalidReference) {
			return MessageAnalytics{}, err
		}
		s.logger.Error(ctx, "failed to create message analytics", err)
		return MessageAnalytics{}, fmt.Errorf("failed to create message analytics: %w", err)
	}
	return row, nil
}

func (s *Store) GetMessageAnalyticsByID(ctx context.Context, id uuid.UUID) (MessageAnalytics, error) {
	var row MessageAnalytics
	err := s.db.GetContext(ctx, &row, s.rebind(`SELECT `+messageAnalyticsColumns+` FROM message_analytics WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MessageAnalytics{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get message analytics", err)
		return MessageAnalytics{}, fmt.Errorf("failed to get message analytics: %w", err)
	}
	return row, nil
}

func (s *Store) ListMessageAnalytics(ctx context.Context, params ListParams) (Page[MessageAnalytics], error) {
	page, err := listPage[MessageAnalytics](ctx, s.db, s.rebind, messageAnalyticsListSpec, params)
	if err != nil && !errors.Is(err, ErrInvalidFilter) {
		s.logger.Error(ctx, "failed to list message analytics", err)
	}
	return page, err
}

// ListMessageAnalyticsIDs returns every bucket id, oldest date first.
func (s *Store) ListMessageAnalyticsIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := s.db.SelectContext(ctx, &ids, `SELECT id FROM message_analytics ORDER BY date, id`); err != nil {
		s.logger.Error(ctx, "failed to list message analytics ids", err)
		return nil, fmt.Errorf("failed to list message analytics ids: %w", err)
	}
	return ids, nil
}

const sqlUpdateMessageAnalytics = `
UPDATE message_analytics
SET sent_count = COALESCE(?, sent_count),
    delivered_count = COALESCE(?, delivered_count),
    open_count = COALESCE(?, open_count),
    click_count = COALESCE(?, click_count),
    unique_open_count = COALESCE(?, unique_open_count),
    unique_click_count = COALESCE(?, unique_click_count),
    bounce_count = COALESCE(?, bounce_count),
    complaint_count = COALESCE(?, complaint_count),
    updated_at = ?
WHERE id = ?
RETURNING ` + messageAnalyticsColumns

// UpdateMessageAnalytics overwrites counters. Rates are left stale.
func (s *Store) UpdateMessageAnalytics(ctx context.Context, id uuid.UUID, params UpdateMessageAnalyticsParams) (MessageAnalytics, error) {
	var row MessageAnalytics
	err := s.db.GetContext(ctx, &row, s.rebind(sqlUpdateMessageAnalytics),
		params.SentCount, params.DeliveredCount, params.OpenCount, params.ClickCount,
		params.UniqueOpenCount, params.UniqueClickCount, params.BounceCount, params.ComplaintCount, now(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MessageAnalytics{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update message analytics", err)
		return MessageAnalytics{}, fmt.Errorf("failed to update message analytics: %w", err)
	}
	return row, nil
}

const sqlUpdateMessageAnalyticsRates = `
UPDATE message_analytics
SET delivery_rate = ?, open_rate = ?, click_rate = ?
WHERE id = ?
RETURNING ` + messageAnalyticsColumns

// UpdateMessageAnalyticsRates writes only the three derived rates.
func (s *Store) UpdateMessageAnalyticsRates(ctx context.Context, id uuid.UUID, rates AnalyticsRates) (MessageAnalytics, error) {
	var row MessageAnalytics
	err := s.db.GetContext(ctx, &row, s.rebind(sqlUpdateMessageAnalyticsRates),
		rates.DeliveryRate, rates.OpenRate, rates.ClickRate, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MessageAnalytics{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update message analytics rates", err)
		return MessageAnalytics{}, fmt.Errorf("failed to update message analytics rates: %w", err)
	}
	return row, nil
}

func (s *Store) DeleteMessageAnalytics(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM message_analytics WHERE id = ?`), id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete message analytics", err)
		return fmt.Errorf("failed to delete message analytics: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SummarizeMessageAnalytics aggregates every bucket matching the list
// filters. Empty sets summarise to zeros.
func (s *Store) SummarizeMessageAnalytics(ctx context.Context, params ListParams) (AnalyticsSummary, error) {
	where, args, err := messageAnalyticsListSpec.where(params)
	if err != nil {
		return AnalyticsSummary{}, err
	}
	query := `
SELECT
    COALESCE(SUM(sent_count), 0) AS total_sent,
    COALESCE(SUM(delivered_count), 0) AS total_delivered,
    COALESCE(AVG(delivery_rate), 0.0) AS avg_delivery_rate,
    COALESCE(AVG(open_rate), 0.0) AS avg_open_rate
FROM message_analytics` + where

	var summary AnalyticsSummary
	if err := s.db.GetContext(ctx, &summary, s.rebind(query), args...); err != nil {
		s.logger.Error(ctx, "failed to summarize message analytics", err)
		return AnalyticsSummary{}, fmt.Errorf("failed to summarize message analytics: %w", err)
	}
	return summary, nil
}

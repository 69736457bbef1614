package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const clientEngagementJoinedColumns = `e.id, e.client_id, e.email_sent_count, e.email_open_count, e.email_click_count,
e.whatsapp_sent_count, e.whatsapp_delivered_count, e.whatsapp_read_count,
e.last_email_sent, e.last_email_opened, e.last_email_clicked, e.last_whatsapp_sent, e.last_whatsapp_delivered, e.last_whatsapp_read,
e.engagement_score, e.created_at, e.updated_at,
c.first_name || ' ' || c.last_name AS client_name, c.email AS client_email`

const clientEngagementFrom = `client_engagement e JOIN clients c ON c.id = e.client_id`

// EngagementCounters are the raw interaction counters of a client.
type EngagementCounters struct {
	EmailSentCount         int
	EmailOpenCount         int
	EmailClickCount        int
	WhatsAppSentCount      int
	WhatsAppDeliveredCount int
	WhatsAppReadCount      int
}

type CreateClientEngagementParams struct {
	ClientID              uuid.UUID
	Counters              EngagementCounters
	LastEmailSent         *time.Time
	LastEmailOpened       *time.Time
	LastEmailClicked      *time.Time
	LastWhatsAppSent      *time.Time
	LastWhatsAppDelivered *time.Time
	LastWhatsAppRead      *time.Time
}

type UpdateClientEngagementParams struct {
	EmailSentCount         *int
	EmailOpenCount         *int
	EmailClickCount        *int
	WhatsAppSentCount      *int
	WhatsAppDeliveredCount *int
	WhatsAppReadCount      *int
	LastEmailSent          *time.Time
	LastEmailOpened        *time.Time
	LastEmailClicked       *time.Time
	LastWhatsAppSent       *time.Time
	LastWhatsAppDelivered  *time.Time
	LastWhatsAppRead       *time.Time
}

var clientEngagementListSpec = listSpec{
	from:    clientEngagementFrom,
	columns: clientEngagementJoinedColumns,
	filters: map[string]filterColumn{
		"client": {"e.client_id", filterUUID},
	},
	search: []string{"c.first_name", "c.last_name", "c.email"},
	ordering: map[string]string{
		"engagement_score": "e.engagement_score",
		"updated_at":       "e.updated_at",
	},
	defaultOrder: "e.engagement_score DESC",
	tiebreak:     "e.id",
}

const sqlCreateClientEngagement = `
INSERT INTO client_engagement (id, client_id, email_sent_count, email_open_count, email_click_count,
    whatsapp_sent_count, whatsapp_delivered_count, whatsapp_read_count,
    last_email_sent, last_email_opened, last_email_clicked, last_whatsapp_sent, last_whatsapp_delivered, last_whatsapp_read,
    engagement_score, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
RETURNING id`

// CreateClientEngagement creates the single engagement row of a client.
func (s *Store) CreateClientEngagement(ctx context.Context, params CreateClientEngagementParams) (ClientEngagement, error) {
	var exists int
	if err := s.db.GetContext(ctx, &exists, s.rebind(`SELECT COUNT(*) FROM clients WHERE id = ?`), params.ClientID); err != nil {
		s.logger.Error(ctx, "failed to check client", err)
		return ClientEngagement{}, fmt.Errorf("failed to check client: %w", err)
	}
	if exists == 0 {
		return ClientEngagement{}, fmt.Errorf("%w: client %s", ErrInvalidReference, params.ClientID)
	}

	c := params.Counters
	ts := now()
	var id uuid.UUID
	err := s.db.GetContext(ctx, &id, s.rebind(sqlCreateClientEngagement),
		newID(), params.ClientID, c.EmailSentCount, c.EmailOpenCount, c.EmailClickCount,
		c.WhatsAppSentCount, c.WhatsAppDeliveredCount, c.WhatsAppReadCount,
		params.LastEmailSent, params.LastEmailOpened, params.LastEmailClicked,
		params.LastWhatsAppSent, params.LastWhatsAppDelivered, params.LastWhatsAppRead, ts, ts)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrAlreadyExists) {
			return ClientEngagement{}, err
		}
		s.logger.Error(ctx, "failed to create client engagement", err)
		return ClientEngagement{}, fmt.Errorf("failed to create client engagement: %w", err)
	}
	return s.GetClientEngagementByID(ctx, id)
}

func (s *Store) GetClientEngagementByID(ctx context.Context, id uuid.UUID) (ClientEngagement, error) {
	var row ClientEngagement
	err := s.db.GetContext(ctx, &row,
		s.rebind(`SELECT `+clientEngagementJoinedColumns+` FROM `+clientEngagementFrom+` WHERE e.id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClientEngagement{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get client engagement", err)
		return ClientEngagement{}, fmt.Errorf("failed to get client engagement: %w", err)
	}
	return row, nil
}

func (s *Store) ListClientEngagement(ctx context.Context, params ListParams) (Page[ClientEngagement], error) {
	page, err := listPage[ClientEngagement](ctx, s.db, s.rebind, clientEngagementListSpec, params)
	if err != nil && !errors.Is(err, ErrInvalidFilter) {
		s.logger.Error(ctx, "failed to list client engagement", err)
	}
	return page, err
}

// ListClientEngagementIDs returns every engagement row id.
func (s *Store) ListClientEngagementIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := s.db.SelectContext(ctx, &ids, `SELECT id FROM client_engagement ORDER BY created_at, id`); err != nil {
		s.logger.Error(ctx, "failed to list client engagement ids", err)
		return nil, fmt.Errorf("failed to list client engagement ids: %w", err)
	}
	return ids, nil
}

// TopEngagedClients returns the limit highest-scored engagement rows matching
// the list filters and search. Ordering and paging in params are ignored.
func (s *Store) TopEngagedClients(ctx context.Context, params ListParams, limit int) ([]ClientEngagement, error) {
	where, args, err := clientEngagementListSpec.where(params)
	if err != nil {
		return nil, err
	}
	rows := []ClientEngagement{}
	query := `SELECT ` + clientEngagementJoinedColumns + ` FROM ` + clientEngagementFrom + where +
		` ORDER BY e.engagement_score DESC, e.id LIMIT ?`
	if err := s.db.SelectContext(ctx, &rows, s.rebind(query), append(args, limit)...); err != nil {
		s.logger.Error(ctx, "failed to get top engaged clients", err)
		return nil, fmt.Errorf("failed to get top engaged clients: %w", err)
	}
	return rows, nil
}

const sqlUpdateClientEngagement = `
UPDATE client_engagement
SET email_sent_count = COALESCE(?, email_sent_count),
    email_open_count = COALESCE(?, email_open_count),
    email_click_count = COALESCE(?, email_click_count),
    whatsapp_sent_count = COALESCE(?, whatsapp_sent_count),
    whatsapp_delivered_count = COALESCE(?, whatsapp_delivered_count),
    whatsapp_read_count = COALESCE(?, whatsapp_read_count),
    last_email_sent = COALESCE(?, last_email_sent),
    last_email_opened = COALESCE(?, last_email_opened),
    last_email_clicked = COALESCE(?, last_email_clicked),
    last_whatsapp_sent = COALESCE(?, last_whatsapp_sent),
    last_whatsapp_delivered = COALESCE(?, last_whatsapp_delivered),
    last_whatsapp_read = COALESCE(?, last_whatsapp_read),
    updated_at = ?
WHERE id = ?`

// UpdateClientEngagement overwrites counters and timestamps. The score is left stale.
func (s *Store) UpdateClientEngagement(ctx context.Context, id uuid.UUID, params UpdateClientEngagementParams) (ClientEngagement, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(sqlUpdateClientEngagement),
		params.EmailSentCount, params.EmailOpenCount, params.EmailClickCount,
		params.WhatsAppSentCount, params.WhatsAppDeliveredCount, params.WhatsAppReadCount,
		params.LastEmailSent, params.LastEmailOpened, params.LastEmailClicked,
		params.LastWhatsAppSent, params.LastWhatsAppDelivered, params.LastWhatsAppRead, now(), id)
	if err != nil {
		s.logger.Error(ctx, "failed to update client engagement", err)
		return ClientEngagement{}, fmt.Errorf("failed to update client engagement: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ClientEngagement{}, ErrNotFound
	}
	return s.GetClientEngagementByID(ctx, id)
}

// UpdateEngagementScore writes only the score.
func (s *Store) UpdateEngagementScore(ctx context.Context, id uuid.UUID, score float64) (ClientEngagement, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(`UPDATE client_engagement SET engagement_score = ? WHERE id = ?`), score, id)
	if err != nil {
		s.logger.Error(ctx, "failed to update engagement score", err)
		return ClientEngagement{}, fmt.Errorf("failed to update engagement score: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ClientEngagement{}, ErrNotFound
	}
	return s.GetClientEngagementByID(ctx, id)
}

func (s *Store) DeleteClientEngagement(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM client_engagement WHERE id = ?`), id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete client engagement", err)
		return fmt.Errorf("failed to delete client engagement: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

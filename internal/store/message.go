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

const messageColumns = `id, type, direction, client_id, from_email, from_number, to_email, to_number, subject, body,
has_attachments, status, status_details, track_opens, track_clicks, campaign_id, template_id,
created_at, scheduled_at, sent_at, delivered_at, read_at`

// CreateMessageParams represents parameters for recording a message
type CreateMessageParams struct {
	Type          string
	Direction     string
	ClientID      *uuid.UUID
	FromEmail     *string
	FromNumber    *string
	ToEmail       *string
	ToNumber      *string
	Subject       *string
	Body          string
	Status        string
	StatusDetails *string
	TrackOpens    bool
	TrackClicks   bool
	CampaignID    *uuid.UUID
	TemplateID    *uuid.UUID
	ScheduledAt   *time.Time
}

// UpdateMessageParams represents parameters for editing a message.
// Lifecycle timestamps move only through MarkMessages.
type UpdateMessageParams struct {
	Type          *string
	Direction     *string
	ClientID      NullableRef
	FromEmail     *string
	FromNumber    *string
	ToEmail       *string
	ToNumber      *string
	Subject       *string
	Body          *string
	Status        *string
	StatusDetails *string
	TrackOpens    *bool
	TrackClicks   *bool
	CampaignID    NullableRef
	TemplateID    NullableRef
	ScheduledAt   *time.Time
}

var messageListSpec = listSpec{
	from:    "messages",
	columns: messageColumns,
	filters: map[string]filterColumn{
		"type":      {"type", filterText},
		"direction": {"direction", filterText},
		"status":    {"status", filterText},
		"client":    {"client_id", filterNullableUUID},
		"campaign":  {"campaign_id", filterNullableUUID},
		"template":  {"template_id", filterNullableUUID},
	},
	search: []string{"subject", "body", "from_email", "to_email", "from_number", "to_number"},
	ordering: map[string]string{
		"created_at":   "created_at",
		"sent_at":      "sent_at",
		"delivered_at": "delivered_at",
		"read_at":      "read_at",
	},
	defaultOrder: "created_at DESC",
	tiebreak:     "id",
}

const sqlCreateMessage = `
INSERT INTO messages (id, type, direction, client_id, from_email, from_number, to_email, to_number, subject, body,
    has_attachments, status, status_details, track_opens, track_clicks, campaign_id, template_id,
    created_at, scheduled_at, sent_at, delivered_at, read_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, NULL, NULL)
RETURNING ` + messageColumns

func (s *Store) CreateMessage(ctx context.Context, params CreateMessageParams) (Message, error) {
	var msg Message
	err := s.db.GetContext(ctx, &msg, s.rebind(sqlCreateMessage),
		newID(), params.Type, params.Direction, params.ClientID, params.FromEmail, params.FromNumber,
		params.ToEmail, params.ToNumber, params.Subject, params.Body, false, params.Status,
		params.StatusDetails, params.TrackOpens, params.TrackClicks, params.CampaignID,
		params.TemplateID, now(), params.ScheduledAt)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrInvalidReference) {
			return Message{}, err
		}
		s.logger.Error(ctx, "failed to create message", err)
		return Message{}, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

func (s *Store) GetMessageByID(ctx context.Context, id uuid.UUID) (Message, error) {
	var msg Message
	err := s.db.GetContext(ctx, &msg, s.rebind(`SELECT `+messageColumns+` FROM messages WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Message{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get message", err)
		return Message{}, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

func (s *Store) ListMessages(ctx context.Context, params ListParams) (Page[Message], error) {
	page, err := listPage[Message](ctx, s.db, s.rebind, messageListSpec, params)
	if err != nil && !errors.Is(err, ErrInvalidFilter) {
		s.logger.Error(ctx, "failed to list messages", err)
	}
	return page, err
}

const sqlUpdateMessage = `
UPDATE messages
SET type = COALESCE(?, type),
    direction = COALESCE(?, direction),
    client_id = CASE WHEN ? THEN NULL ELSE COALESCE(?, client_id) END,
    from_email = COALESCE(?, from_email),
    from_number = COALESCE(?, from_number),
    to_email = COALESCE(?, to_email),
    to_number = COALESCE(?, to_number),
    subject = COALESCE(?, subject),
    body = COALESCE(?, body),
    status = COALESCE(?, status),
    status_details = COALESCE(?, status_details),
    track_opens = COALESCE(?, track_opens),
    track_clicks = COALESCE(?, track_clicks),
    campaign_id = CASE WHEN ? THEN NULL ELSE COALESCE(?, campaign_id) END,
    template_id = CASE WHEN ? THEN NULL ELSE COALESCE(?, template_id) END,
    scheduled_at = COALESCE(?, scheduled_at)
WHERE id = ?
RETURNING ` + messageColumns

func (s *Store) UpdateMessage(ctx context.Context, id uuid.UUID, params UpdateMessageParams) (Message, error) {
	var msg Message
	err := s.db.GetContext(ctx, &msg, s.rebind(sqlUpdateMessage),
		params.Type, params.Direction, params.ClientID.clears(), params.ClientID.ID, params.FromEmail, params.FromNumber,
		params.ToEmail, params.ToNumber, params.Subject, params.Body, params.Status,
		params.StatusDetails, params.TrackOpens, params.TrackClicks,
		params.CampaignID.clears(), params.CampaignID.ID,
		params.TemplateID.clears(), params.TemplateID.ID, params.ScheduledAt, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Message{}, ErrNotFound
		}
		err = translateError(err)
		if errors.Is(err, ErrInvalidReference) {
			return Message{}, err
		}
		s.logger.Error(ctx, "failed to update message", err)
		return Message{}, fmt.Errorf("failed to update message: %w", err)
	}
	return msg, nil
}

// DeleteMessage removes a message together with its attachments and events.
func (s *Store) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM message_attachments WHERE message_id = ?`,
			`DELETE FROM message_events WHERE message_id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, s.rebind(stmt), id); err != nil {
				return err
			}
		}
		return deleteByID(ctx, tx, s.rebind(`DELETE FROM messages WHERE id = ?`), id)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error(ctx, "failed to delete message", err)
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return err
}

// MessageMark describes one lifecycle transition: the status to set and
// the timestamp column it stamps.
type MessageMark struct {
	Status string
	Column string
}

var (
	MarkSent      = MessageMark{Status: MessageStatusSent, Column: "sent_at"}
	MarkDelivered = MessageMark{Status: MessageStatusDelivered, Column: "delivered_at"}
	MarkRead      = MessageMark{Status: MessageStatusRead, Column: "read_at"}
)

// MarkMessages sets status and its timestamp on every listed message in a
// single statement. The previous status is not checked.
func (s *Store) MarkMessages(ctx context.Context, ids []uuid.UUID, mark MessageMark, at time.Time) ([]Message, error) {
	if len(ids) == 0 {
		return []Message{}, nil
	}
	switch mark {
	case MarkSent, MarkDelivered, MarkRead:
	default:
		return nil, fmt.Errorf("unknown message mark %q", mark.Status)
	}
	query, args, err := inClause(`UPDATE messages SET status = ?, `+mark.Column+` = ? WHERE id IN (?)`, ids, mark.Status, at.UTC())
	if err != nil {
		return nil, err
	}
	return s.updateMessagesReturning(ctx, query, args, ids)
}

// MarkMessagesFailed sets status failed and records details. No timestamp is stamped.
func (s *Store) MarkMessagesFailed(ctx context.Context, ids []uuid.UUID, details *string) ([]Message, error) {
	if len(ids) == 0 {
		return []Message{}, nil
	}
	query, args, err := inClause(`UPDATE messages SET status = ?, status_details = COALESCE(?, status_details) WHERE id IN (?)`,
		ids, MessageStatusFailed, details)
	if err != nil {
		return nil, err
	}
	return s.updateMessagesReturning(ctx, query, args, ids)
}

func (s *Store) updateMessagesReturning(ctx context.Context, query string, args []interface{}, ids []uuid.UUID) ([]Message, error) {
	var msgs []Message
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, s.rebind(query), args...); err != nil {
			return err
		}
		selectQuery, selectArgs, err := inClause(`SELECT `+messageColumns+` FROM messages WHERE id IN (?) ORDER BY created_at, id`, ids)
		if err != nil {
			return err
		}
		msgs = []Message{}
		return tx.SelectContext(ctx, &msgs, s.rebind(selectQuery), selectArgs...)
	})
	if err != nil {
		s.logger.Error(ctx, "failed to update message status", err)
		return nil, fmt.Errorf("failed to update message status: %w", err)
	}
	return msgs, nil
}

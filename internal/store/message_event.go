package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const messageEventColumns = `id, message_id, event_type, occurred_at, ip_address, user_agent, url, metadata`

// CreateMessageEventParams represents one observed event. A nil OccurredAt
// means "now".
type CreateMessageEventParams struct {
	MessageID  uuid.UUID
	EventType  string
	OccurredAt *time.Time
	IPAddress  *string
	UserAgent  *string
	URL        *string
	Metadata   JSONB
}

var messageEventListSpec = listSpec{
	from:    "message_events",
	columns: messageEventColumns,
	filters: map[string]filterColumn{
		"message":    {"message_id", filterUUID},
		"event_type": {"event_type", filterText},
	},
	search:       []string{"ip_address", "user_agent"},
	ordering:     map[string]string{"occurred_at": "occurred_at"},
	defaultOrder: "occurred_at DESC",
	tiebreak:     "id",
}

const sqlCreateMessageEvent = `
INSERT INTO message_events (id, message_id, event_type, occurred_at, ip_address, user_agent, url, metadata)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + messageEventColumns

// CreateMessageEvent appends an event. Events are never updated or deleted
// individually; they go away only with their message.
func (s *Store) CreateMessageEvent(ctx context.Context, params CreateMessageEventParams) (MessageEvent, error) {
	occurred := now()
	if params.OccurredAt != nil {
		occurred = params.OccurredAt.UTC()
	}

	var exists int
	if err := s.db.GetContext(ctx, &exists, s.rebind(`SELECT COUNT(*) FROM messages WHERE id = ?`), params.MessageID); err != nil {
		s.logger.Error(ctx, "failed to check message", err)
		return MessageEvent{}, fmt.Errorf("failed to check message: %w", err)
	}
	if exists == 0 {
		return MessageEvent{}, fmt.Errorf("%w: message %s", ErrInvalidReference, params.MessageID)
	}

	var event MessageEvent
	err := s.db.GetContext(ctx, &event, s.rebind(sqlCreateMessageEvent),
		newID(), params.MessageID, params.EventType, occurred, params.IPAddress, params.UserAgent, params.URL, params.Metadata)
	if err != nil {
		s.logger.Error(ctx, "failed to create message event", err)
		return MessageEvent{}, fmt.Errorf("failed to create message event: %w", translateError(err))
	}
	return event, nil
}

func (s *Store) GetMessageEventByID(ctx context.Context, id uuid.UUID) (MessageEvent, error) {
	var event MessageEvent
	err := s.db.GetContext(ctx, &event, s.rebind(`SELECT `+messageEventColumns+` FROM message_events WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MessageEvent{}, ErrNotFound
		}
		return MessageEvent{}, fmt.Errorf("failed to get message event: %w", err)
	}
	return event, nil
}

func (s *Store) ListMessageEvents(ctx context.Context, params ListParams) (Page[MessageEvent], error) {
	page, err := listPage[MessageEvent](ctx, s.db, s.rebind, messageEventListSpec, params)
	if err != nil && !errors.Is(err, ErrInvalidFilter) {
		s.logger.Error(ctx, "failed to list message events", err)
	}
	return page, err
}

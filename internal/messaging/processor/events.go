package processor

import (
	"context"
	"errors"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// RecordEvent appends a delivery or engagement event to a message. Events
// are immutable once written. occurred_at defaults to the time of recording.
func (p *MessageProcessor) RecordEvent(ctx context.Context, params store.CreateMessageEventParams) (store.MessageEvent, error) {
	ctx = messageFields(ctx, params.MessageID)

	event, err := p.store.CreateMessageEvent(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return store.MessageEvent{}, ErrUnknownMessage
		}
		p.logger.Error(ctx, "failed to record message event", err)
		return store.MessageEvent{}, err
	}
	return event, nil
}

func (p *MessageProcessor) GetEvent(ctx context.Context, id uuid.UUID) (store.MessageEvent, error) {
	event, err := p.store.GetMessageEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.MessageEvent{}, ErrEventNotFound
		}
		p.logger.Error(ctx, "failed to get message event", err)
		return store.MessageEvent{}, err
	}
	return event, nil
}

func (p *MessageProcessor) ListEvents(ctx context.Context, params store.ListParams) (store.Page[store.MessageEvent], error) {
	page, err := p.store.ListMessageEvents(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list message events", err)
	}
	return page, err
}

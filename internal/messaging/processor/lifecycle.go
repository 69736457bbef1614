package processor

import (
	"context"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// MarkSent sets status sent and stamps sent_at on every listed message.
// Unknown IDs are ignored. The previous status is not checked.
func (p *MessageProcessor) MarkSent(ctx context.Context, ids []uuid.UUID) ([]store.Message, error) {
	return p.mark(ctx, ids, store.MarkSent)
}

// MarkDelivered sets status delivered and stamps delivered_at.
func (p *MessageProcessor) MarkDelivered(ctx context.Context, ids []uuid.UUID) ([]store.Message, error) {
	return p.mark(ctx, ids, store.MarkDelivered)
}

// MarkRead sets status read and stamps read_at.
func (p *MessageProcessor) MarkRead(ctx context.Context, ids []uuid.UUID) ([]store.Message, error) {
	return p.mark(ctx, ids, store.MarkRead)
}

// MarkFailed sets status failed. A non-nil details replaces status_details.
func (p *MessageProcessor) MarkFailed(ctx context.Context, ids []uuid.UUID, details *string) ([]store.Message, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status", Value: store.MessageStatusFailed},
		observability.Field{Key: "requested", Value: len(ids)},
	)

	msgs, err := p.store.MarkMessagesFailed(ctx, ids, details)
	if err != nil {
		p.logger.Error(ctx, "failed to mark messages failed", err)
		return nil, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "updated", Value: len(msgs)}), "messages marked")
	return msgs, nil
}

func (p *MessageProcessor) mark(ctx context.Context, ids []uuid.UUID, mark store.MessageMark) ([]store.Message, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status", Value: mark.Status},
		observability.Field{Key: "requested", Value: len(ids)},
	)

	msgs, err := p.store.MarkMessages(ctx, ids, mark, p.now())
	if err != nil {
		p.logger.Error(ctx, "failed to mark messages", err)
		return nil, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "updated", Value: len(msgs)}), "messages marked")
	return msgs, nil
}

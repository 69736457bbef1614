package processor

import (
	"context"
	"errors"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// CreateAttachment records an attachment reference and flags the message
// as having attachments.
func (p *MessageProcessor) CreateAttachment(ctx context.Context, params store.CreateMessageAttachmentParams) (store.MessageAttachment, error) {
	ctx = messageFields(ctx, params.MessageID)
	attachment, err := p.store.CreateMessageAttachment(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return store.MessageAttachment{}, ErrUnknownMessage
		}
		p.logger.Error(ctx, "failed to create message attachment", err)
		return store.MessageAttachment{}, err
	}
	return attachment, nil
}

func (p *MessageProcessor) GetAttachment(ctx context.Context, id uuid.UUID) (store.MessageAttachment, error) {
	attachment, err := p.store.GetMessageAttachmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.MessageAttachment{}, ErrAttachmentNotFound
		}
		p.logger.Error(ctx, "failed to get message attachment", err)
		return store.MessageAttachment{}, err
	}
	return attachment, nil
}

func (p *MessageProcessor) ListAttachments(ctx context.Context, params store.ListParams) (store.Page[store.MessageAttachment], error) {
	page, err := p.store.ListMessageAttachments(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list message attachments", err)
	}
	return page, err
}

func (p *MessageProcessor) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	if err := p.store.DeleteMessageAttachment(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAttachmentNotFound
		}
		p.logger.Error(ctx, "failed to delete message attachment", err)
		return err
	}
	return nil
}

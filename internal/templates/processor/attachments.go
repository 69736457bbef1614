package processor

import (
	"context"
	"errors"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// CreateAttachment records an attachment reference. The file bytes live in
// external storage; only the storage key is kept.
func (p *TemplateProcessor) CreateAttachment(ctx context.Context, params store.CreateTemplateAttachmentParams) (store.TemplateAttachment, error) {
	ctx = templateFields(ctx, params.TemplateID)
	attachment, err := p.store.CreateTemplateAttachment(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return store.TemplateAttachment{}, ErrUnknownTemplate
		}
		p.logger.Error(ctx, "failed to create template attachment", err)
		return store.TemplateAttachment{}, err
	}
	return attachment, nil
}

func (p *TemplateProcessor) GetAttachment(ctx context.Context, id uuid.UUID) (store.TemplateAttachment, error) {
	attachment, err := p.store.GetTemplateAttachmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.TemplateAttachment{}, ErrAttachmentNotFound
		}
		p.logger.Error(ctx, "failed to get template attachment", err)
		return store.TemplateAttachment{}, err
	}
	return attachment, nil
}

func (p *TemplateProcessor) ListAttachments(ctx context.Context, params store.ListParams) (store.Page[store.TemplateAttachment], error) {
	page, err := p.store.ListTemplateAttachments(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list template attachments", err)
	}
	return page, err
}

func (p *TemplateProcessor) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	if err := p.store.DeleteTemplateAttachment(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAttachmentNotFound
		}
		p.logger.Error(ctx, "failed to delete template attachment", err)
		return err
	}
	return nil
}

package processor

import (
	"context"
	"errors"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// CreateTag creates a tag. An empty color becomes black.
func (p *ClientProcessor) CreateTag(ctx context.Context, params store.CreateClientTagParams) (store.ClientTag, error) {
	if params.Color == "" {
		params.Color = defaultTagColor
	}
	tag, err := p.store.CreateClientTag(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.ClientTag{}, ErrTagAlreadyExists
		}
		p.logger.Error(ctx, "failed to create client tag", err)
		return store.ClientTag{}, err
	}
	return tag, nil
}

func (p *ClientProcessor) GetTag(ctx context.Context, id uuid.UUID) (store.ClientTag, error) {
	tag, err := p.store.GetClientTagByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ClientTag{}, ErrTagNotFound
		}
		p.logger.Error(ctx, "failed to get client tag", err)
		return store.ClientTag{}, err
	}
	return tag, nil
}

func (p *ClientProcessor) ListTags(ctx context.Context, params store.ListParams) (store.Page[store.ClientTag], error) {
	page, err := p.store.ListClientTags(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list client tags", err)
	}
	return page, err
}

func (p *ClientProcessor) UpdateTag(ctx context.Context, id uuid.UUID, params store.UpdateClientTagParams) (store.ClientTag, error) {
	tag, err := p.store.UpdateClientTag(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.ClientTag{}, ErrTagNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return store.ClientTag{}, ErrTagAlreadyExists
		}
		p.logger.Error(ctx, "failed to update client tag", err)
		return store.ClientTag{}, err
	}
	return tag, nil
}

// DeleteTag removes a tag and detaches it from every client.
func (p *ClientProcessor) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if err := p.store.DeleteClientTag(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTagNotFound
		}
		p.logger.Error(ctx, "failed to delete client tag", err)
		return err
	}
	return nil
}

package processor

import (
	"context"
	"errors"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

func (p *TemplateProcessor) CreateCategory(ctx context.Context, params store.CreateTemplateCategoryParams) (store.TemplateCategory, error) {
	category, err := p.store.CreateTemplateCategory(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.TemplateCategory{}, ErrCategoryAlreadyExists
		}
		p.logger.Error(ctx, "failed to create template category", err)
		return store.TemplateCategory{}, err
	}
	return category, nil
}

func (p *TemplateProcessor) GetCategory(ctx context.Context, id uuid.UUID) (store.TemplateCategory, error) {
	category, err := p.store.GetTemplateCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.TemplateCategory{}, ErrCategoryNotFound
		}
		p.logger.Error(ctx, "failed to get template category", err)
		return store.TemplateCategory{}, err
	}
	return category, nil
}

func (p *TemplateProcessor) ListCategories(ctx context.Context, params store.ListParams) (store.Page[store.TemplateCategory], error) {
	page, err := p.store.ListTemplateCategories(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list template categories", err)
	}
	return page, err
}

func (p *TemplateProcessor) UpdateCategory(ctx context.Context, id uuid.UUID, params store.UpdateTemplateCategoryParams) (store.TemplateCategory, error) {
	category, err := p.store.UpdateTemplateCategory(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.TemplateCategory{}, ErrCategoryNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return store.TemplateCategory{}, ErrCategoryAlreadyExists
		}
		p.logger.Error(ctx, "failed to update template category", err)
		return store.TemplateCategory{}, err
	}
	return category, nil
}

// DeleteCategory removes a category and unlinks it from every template.
func (p *TemplateProcessor) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := p.store.DeleteTemplateCategory(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		p.logger.Error(ctx, "failed to delete template category", err)
		return err
	}
	return nil
}

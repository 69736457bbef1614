package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const templateCategoryColumns = `id, name, description, created_at`

type CreateTemplateCategoryParams struct {
	Name        string
	Description *string
}

type UpdateTemplateCategoryParams struct {
	Name        *string
	Description *string
}

var templateCategoryListSpec = listSpec{
	from:         "template_categories",
	columns:      templateCategoryColumns,
	search:       []string{"name", "description"},
	ordering:     map[string]string{"name": "name", "created_at": "created_at"},
	defaultOrder: "name ASC",
	tiebreak:     "id",
}

const sqlCreateTemplateCategory = `
INSERT INTO template_categories (id, name, description, created_at)
VALUES (?, ?, ?, ?)
RETURNING ` + templateCategoryColumns

func (s *Store) CreateTemplateCategory(ctx context.Context, params CreateTemplateCategoryParams) (TemplateCategory, error) {
	var category TemplateCategory
	err := s.db.GetContext(ctx, &category, s.rebind(sqlCreateTemplateCategory), newID(), params.Name, params.Description, now())
	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrAlreadyExists) {
			return TemplateCategory{}, err
		}
		s.logger.Error(ctx, "failed to create template category", err)
		return TemplateCategory{}, fmt.Errorf("failed to create template category: %w", err)
	}
	return category, nil
}

func (s *Store) GetTemplateCategoryByID(ctx context.Context, id uuid.UUID) (TemplateCategory, error) {
	var category TemplateCategory
	err := s.db.GetContext(ctx, &category, s.rebind(`SELECT `+templateCategoryColumns+` FROM template_categories WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TemplateCategory{}, ErrNotFound
		}
		return TemplateCategory{}, fmt.Errorf("failed to get template category: %w", err)
	}
	return category, nil
}

func (s *Store) ListTemplateCategories(ctx context.Context, params ListParams) (Page[TemplateCategory], error) {
	page, err := listPage[TemplateCategory](ctx, s.db, s.rebind, templateCategoryListSpec, params)
	if err != nil && !errors.Is(err, ErrInvalidFilter) {
		s.logger.Error(ctx, "failed to list template categories", err)
	}
	return page, err
}

const sqlUpdateTemplateCategory = `
UPDATE template_categories
SET name = COALESCE(?, name),
    description = COALESCE(?, description)
WHERE id = ?
RETURNING ` + templateCategoryColumns

func (s *Store) UpdateTemplateCategory(ctx context.Context, id uuid.UUID, params UpdateTemplateCategoryParams) (TemplateCategory, error) {
	var category TemplateCategory
	err := s.db.GetContext(ctx, &category, s.rebind(sqlUpdateTemplateCategory), params.Name, params.Description, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TemplateCategory{}, ErrNotFound
		}
		err = translateError(err)
		if errors.Is(err, ErrAlreadyExists) {
			return TemplateCategory{}, err
		}
		s.logger.Error(ctx, "failed to update template category", err)
		return TemplateCategory{}, fmt.Errorf("failed to update template category: %w", err)
	}
	return category, nil
}

func (s *Store) DeleteTemplateCategory(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM template_category_links WHERE category_id = ?`), id); err != nil {
			return err
		}
		return deleteByID(ctx, tx, s.rebind(`DELETE FROM template_categories WHERE id = ?`), id)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error(ctx, "failed to delete template category", err)
		return fmt.Errorf("failed to delete template category: %w", err)
	}
	return err
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const templateColumns = `id, name, description, type, subject, body, is_html, variables, is_active, created_at, updated_at`

// CreateTemplateParams represents parameters for creating a message template
type CreateTemplateParams struct {
	Name        string
	Description *string
	Type        string
	Subject     *string
	Body        string
	IsHTML      bool
	Variables   JSONB
	IsActive    bool
	CategoryIDs []uuid.UUID
}

type UpdateTemplateParams struct {
	Name        *string
	Description *string
	Type        *string
	Subject     *string
	Body        *string
	IsHTML      *bool
	Variables   JSONB
	IsActive    *bool
	CategoryIDs *[]uuid.UUID
}

var templateListSpec = listSpec{
	from:    "message_templates",
	columns: templateColumns,
	filters: map[string]filterColumn{
		"type":      {"type", filterText},
		"is_html":   {"is_html", filterBool},
		"is_active": {"is_active", filterBool},
	},
	search: []string{"name", "description", "subject", "body"},
	ordering: map[string]string{
		"created_at": "created_at",
		"updated_at": "updated_at",
		"name":       "name",
	},
	defaultOrder: "created_at DESC",
	tiebreak:     "id",
}

const sqlCreateTemplate = `
INSERT INTO message_templates (id, name, description, type, subject, body, is_html, variables, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + templateColumns

// CreateTemplate creates a template and links its categories
func (s *Store) CreateTemplate(ctx context.Context, params CreateTemplateParams) (MessageTemplate, error) {
	var tmpl MessageTemplate
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		ts := now()
		if err := tx.GetContext(ctx, &tmpl, s.rebind(sqlCreateTemplate),
			newID(), params.Name, params.Description, params.Type, params.Subject, params.Body,
			params.IsHTML, params.Variables, params.IsActive, ts, ts); err != nil {
			return translateError(err)
		}
		if err := s.replaceLinks(ctx, tx, "template_category_links", "template_id", "category_id", tmpl.ID, params.CategoryIDs); err != nil {
			return err
		}
		return s.loadTemplateRelations(ctx, tx, &tmpl)
	})
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			return MessageTemplate{}, err
		}
		s.logger.Error(ctx, "failed to create template", err)
		return MessageTemplate{}, fmt.Errorf("failed to create template: %w", err)
	}
	return tmpl, nil
}

// GetTemplateByID retrieves a template with categories and attachments
func (s *Store) GetTemplateByID(ctx context.Context, id uuid.UUID) (MessageTemplate, error) {
	var tmpl MessageTemplate
	err := s.db.GetContext(ctx, &tmpl, s.rebind(`SELECT `+templateColumns+` FROM message_templates WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MessageTemplate{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get template", err)
		return MessageTemplate{}, fmt.Errorf("failed to get template: %w", err)
	}
	if err := s.loadTemplateRelations(ctx, s.db, &tmpl); err != nil {
		return MessageTemplate{}, err
	}
	return tmpl, nil
}

func (s *Store) ListTemplates(ctx context.Context, params ListParams) (Page[MessageTemplate], error) {
	page, err := listPage[MessageTemplate](ctx, s.db, s.rebind, templateListSpec, params)
	if err != nil {
		if !errors.Is(err, ErrInvalidFilter) {
			s.logger.Error(ctx, "failed to list templates", err)
		}
		return page, err
	}
	for i := range page.Results {
		if err := s.loadTemplateRelations(ctx, s.db, &page.Results[i]); err != nil {
			return Page[MessageTemplate]{}, err
		}
	}
	return page, nil
}

const sqlUpdateTemplate = `
UPDATE message_templates
SET name = COALESCE(?, name),
    description = COALESCE(?, description),
    type = COALESCE(?, type),
    subject = COALESCE(?, subject),
    body = COALESCE(?, body),
    is_html = COALESCE(?, is_html),
    variables = COALESCE(?, variables),
    is_active = COALESCE(?, is_active),
    updated_at = ?
WHERE id = ?
RETURNING ` + templateColumns

func (s *Store) UpdateTemplate(ctx context.Context, id uuid.UUID, params UpdateTemplateParams) (MessageTemplate, error) {
	var tmpl MessageTemplate
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &tmpl, s.rebind(sqlUpdateTemplate),
			params.Name, params.Description, params.Type, params.Subject, params.Body,
			params.IsHTML, params.Variables, params.IsActive, now(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translateError(err)
		}
		if params.CategoryIDs != nil {
			if err := s.replaceLinks(ctx, tx, "template_category_links", "template_id", "category_id", id, *params.CategoryIDs); err != nil {
				return err
			}
		}
		return s.loadTemplateRelations(ctx, tx, &tmpl)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidReference) {
			return MessageTemplate{}, err
		}
		s.logger.Error(ctx, "failed to update template", err)
		return MessageTemplate{}, fmt.Errorf("failed to update template: %w", err)
	}
	return tmpl, nil
}

// DeleteTemplate removes a template and its attachments. Campaigns and
// messages that used it keep their rows with the reference cleared.
func (s *Store) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		stmts := []string{
			`UPDATE campaigns SET email_template_id = NULL WHERE email_template_id = ?`,
			`UPDATE campaigns SET whatsapp_template_id = NULL WHERE whatsapp_template_id = ?`,
			`UPDATE messages SET template_id = NULL WHERE template_id = ?`,
			`DELETE FROM template_category_links WHERE template_id = ?`,
			`DELETE FROM template_attachments WHERE template_id = ?`,
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, s.rebind(stmt), id); err != nil {
				return err
			}
		}
		return deleteByID(ctx, tx, s.rebind(`DELETE FROM message_templates WHERE id = ?`), id)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error(ctx, "failed to delete template", err)
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return err
}

const sqlSelectAttachmentsForTemplate = `
SELECT id, template_id, file_path, filename, content_type, created_at
FROM template_attachments WHERE template_id = ? ORDER BY created_at, id`

// DuplicateTemplate copies a template with its categories and attachment
// records. The copy's name gets suffix appended.
func (s *Store) DuplicateTemplate(ctx context.Context, id uuid.UUID, suffix string) (MessageTemplate, error) {
	var tmpl MessageTemplate
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var original MessageTemplate
		if err := tx.GetContext(ctx, &original, s.rebind(`SELECT `+templateColumns+` FROM message_templates WHERE id = ?`), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if err := s.loadTemplateRelations(ctx, tx, &original); err != nil {
			return err
		}

		ts := now()
		if err := tx.GetContext(ctx, &tmpl, s.rebind(sqlCreateTemplate),
			newID(), original.Name+suffix, original.Description, original.Type, original.Subject, original.Body,
			original.IsHTML, original.Variables, original.IsActive, ts, ts); err != nil {
			return err
		}

		categoryIDs := make([]uuid.UUID, 0, len(original.Categories))
		for _, c := range original.Categories {
			categoryIDs = append(categoryIDs, c.ID)
		}
		if err := s.replaceLinks(ctx, tx, "template_category_links", "template_id", "category_id", tmpl.ID, categoryIDs); err != nil {
			return err
		}
		for _, a := range original.Attachments {
			if _, err := tx.ExecContext(ctx, s.rebind(sqlInsertTemplateAttachment),
				newID(), tmpl.ID, a.FilePath, a.Filename, a.ContentType, ts); err != nil {
				return err
			}
		}
		return s.loadTemplateRelations(ctx, tx, &tmpl)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return MessageTemplate{}, err
		}
		s.logger.Error(ctx, "failed to duplicate template", err)
		return MessageTemplate{}, fmt.Errorf("failed to duplicate template: %w", err)
	}
	return tmpl, nil
}

const sqlSelectCategoriesForTemplate = `
SELECT c.id, c.name, c.description, c.created_at
FROM template_categories c
JOIN template_category_links l ON l.category_id = c.id
WHERE l.template_id = ?
ORDER BY c.name`

func (s *Store) loadTemplateRelations(ctx context.Context, q sqlx.QueryerContext, tmpl *MessageTemplate) error {
	tmpl.Categories = []TemplateCategory{}
	if err := sqlx.SelectContext(ctx, q, &tmpl.Categories, s.rebind(sqlSelectCategoriesForTemplate), tmpl.ID); err != nil {
		return fmt.Errorf("failed to load template categories: %w", err)
	}
	tmpl.Attachments = []TemplateAttachment{}
	if err := sqlx.SelectContext(ctx, q, &tmpl.Attachments, s.rebind(sqlSelectAttachmentsForTemplate), tmpl.ID); err != nil {
		return fmt.Errorf("failed to load template attachments: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const templateAttachmentColumns = `id, template_id, file_path, filename, content_type, created_at`

type CreateTemplateAttachmentParams struct {
	TemplateID  uuid.UUID
	FilePath    string
	Filename    string
	ContentType string
}

var templateAttachmentListSpec = listSpec{
	from:    "template_attachments",
	columns: templateAttachmentColumns,
	filters: map[string]filterColumn{
		"template":     {"template_id", filterUUID},
		"content_type": {"content_type", filterText},
	},
	search:       []string{"filename"},
	ordering:     map[string]string{"created_at": "created_at", "filename": "filename"},
	defaultOrder: "created_at DESC",
	tiebreak:     "id",
}

const sqlInsertTemplateAttachment = `
INSERT INTO template_attachments (id, template_id, file_path, filename, content_type, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

const sqlCreateTemplateAttachment = sqlInsertTemplateAttachment + `
RETURNING ` + templateAttachmentColumns

func (s *Store) CreateTemplateAttachment(ctx context.Context, params CreateTemplateAttachmentParams) (TemplateAttachment, error) {
	var attachment TemplateAttachment
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var exists int
		if err := tx.GetContext(ctx, &exists, s.rebind(`SELECT COUNT(*) FROM message_templates WHERE id = ?`), params.TemplateID); err != nil {
			return err
		}
		if exists == 0 {
			return fmt.Errorf("%w: template %s", ErrInvalidReference, params.TemplateID)
		}
		return tx.GetContext(ctx, &attachment, s.rebind(sqlCreateTemplateAttachment),
			newID(), params.TemplateID, params.FilePath, params.Filename, params.ContentType, now())
	})
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			return TemplateAttachment{}, err
		}
		s.logger.Error(ctx, "failed to create template attachment", err)
		return TemplateAttachment{}, fmt.Errorf("failed to create template attachment: %w", err)
	}
	return attachment, nil
}

func (s *Store) GetTemplateAttachmentByID(ctx context.Context, id uuid.UUID) (TemplateAttachment, error) {
	var attachment TemplateAttachment
	err := s.db.GetContext(ctx, &attachment, s.rebind(`SELECT `+templateAttachmentColumns+` FROM template_attachments WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TemplateAttachment{}, ErrNotFound
		}
		return TemplateAttachment{}, fmt.Errorf("failed to get template attachment: %w", err)
	}
	return attachment, nil
}

func (s *Store) ListTemplateAttachments(ctx context.Context, params ListParams) (Page[TemplateAttachment], error) {
	page, err := listPage[TemplateAttachment](ctx, s.db, s.rebind, templateAttachmentListSpec, params)
	if err != nil && !errors.Is(err, ErrInvalidFilter) {
		s.logger.Error(ctx, "failed to list template attachments", err)
	}
	return page, err
}

func (s *Store) DeleteTemplateAttachment(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return deleteByID(ctx, tx, s.rebind(`DELETE FROM template_attachments WHERE id = ?`), id)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error(ctx, "failed to delete template attachment", err)
		return fmt.Errorf("failed to delete template attachment: %w", err)
	}
	return err
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const messageAttachmentColumns = `id, message_id, file_path, filename, file_size, content_type, created_at`

type CreateMessageAttachmentParams struct {
	MessageID   uuid.UUID
	FilePath    string
	Filename    string
	FileSize    int64
	ContentType string
}

var messageAttachmentListSpec = listSpec{
	from:    "message_attachments",
	columns: messageAttachmentColumns,
	filters: map[string]filterColumn{
		"message":      {"message_id", filterUUID},
		"content_type": {"content_type", filterText},
	},
	search:       []string{"filename"},
	ordering:     map[string]string{"created_at": "created_at", "file_size": "file_size"},
	defaultOrder: "created_at DESC",
	tiebreak:     "id",
}

const sqlCreateMessageAttachment = `
INSERT INTO message_attachments (id, message_id, file_path, filename, file_size, content_type, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING ` + messageAttachmentColumns

// CreateMessageAttachment records an attachment and flags its message as having attachments.
func (s *Store) CreateMessageAttachment(ctx context.Context, params CreateMessageAttachmentParams) (MessageAttachment, error) {
	var attachment MessageAttachment
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, s.rebind(`UPDATE messages SET has_attachments = ? WHERE id = ?`), true, params.MessageID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return fmt.Errorf("%w: message %s", ErrInvalidReference, params.MessageID)
		}
		return tx.GetContext(ctx, &attachment, s.rebind(sqlCreateMessageAttachment),
			newID(), params.MessageID, params.FilePath, params.Filename, params.FileSize, params.ContentType, now())
	})
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			return MessageAttachment{}, err
		}
		s.logger.Error(ctx, "failed to create message attachment", err)
		return MessageAttachment{}, fmt.Errorf("failed to create message attachment: %w", err)
	}
	return attachment, nil
}

func (s *Store) GetMessageAttachmentByID(ctx context.Context, id uuid.UUID) (MessageAttachment, error) {
	var attachment MessageAttachment
	err := s.db.GetContext(ctx, &attachment, s.rebind(`SELECT `+messageAttachmentColumns+` FROM message_attachments WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MessageAttachment{}, ErrNotFound
		}
		return MessageAttachment{}, fmt.Errorf("failed to get message attachment: %w", err)
	}
	return attachment, nil
}

func (s *Store) ListMessageAttachments(ctx context.Context, params ListParams) (Page[MessageAttachment], error) {
	page, err := listPage[MessageAttachment](ctx, s.db, s.rebind, messageAttachmentListSpec, params)
	if err != nil && !errors.Is(err, ErrInvalidFilter) {
		s.logger.Error(ctx, "failed to list message attachments", err)
	}
	return page, err
}

func (s *Store) DeleteMessageAttachment(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return deleteByID(ctx, tx, s.rebind(`DELETE FROM message_attachments WHERE id = ?`), id)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error(ctx, "failed to delete message attachment", err)
		return fmt.Errorf("failed to delete message attachment: %w", err)
	}
	return err
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const clientTagColumns = `id, name, color, description, created_at`

type CreateClientTagParams struct {
	Name        string
	Color       string
	Description *string
}

type UpdateClientTagParams struct {
	Name        *string
	Color       *string
	Description *string
}

var clientTagListSpec = listSpec{
	from:         "client_tags",
	columns:      clientTagColumns,
	filters:      map[string]filterColumn{"color": {"color", filterText}},
	search:       []string{"name", "description"},
	ordering:     map[string]string{"name": "name", "created_at": "created_at"},
	defaultOrder: "name ASC",
	tiebreak:     "id",
}

const sqlCreateClientTag = `
INSERT INTO client_tags (id, name, color, description, created_at)
VALUES (?, ?, ?, ?, ?)
RETURNING ` + clientTagColumns

func (s *Store) CreateClientTag(ctx context.Context, params CreateClientTagParams) (ClientTag, error) {
	var tag ClientTag
	err := s.db.GetContext(ctx, &tag, s.rebind(sqlCreateClientTag),
		newID(), params.Name, params.Color, params.Description, now())
	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrAlreadyExists) {
			return ClientTag{}, err
		}
		s.logger.Error(ctx, "failed to create client tag", err)
		return ClientTag{}, fmt.Errorf("failed to create client tag: %w", err)
	}
	return tag, nil
}

func (s *Store) GetClientTagByID(ctx context.Context, id uuid.UUID) (ClientTag, error) {
	var tag ClientTag
	err := s.db.GetContext(ctx, &tag, s.rebind(`SELECT `+clientTagColumns+` FROM client_tags WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClientTag{}, ErrNotFound
		}
		return ClientTag{}, fmt.Errorf("failed to get client tag: %w", err)
	}
	return tag, nil
}

func (s *Store) ListClientTags(ctx context.Context, params ListParams) (Page[ClientTag], error) {
	page, err := listPage[ClientTag](ctx, s.db, s.rebind, clientTagListSpec, params)
	if err != nil && !errors.Is(err, ErrInvalidFilter) {
		s.logger.Error(ctx, "failed to list client tags", err)
	}
	return page, err
}

const sqlUpdateClientTag = `
UPDATE client_tags
SET name = COALESCE(?, name),
    color = COALESCE(?, color),
    description = COALESCE(?, description)
WHERE id = ?
RETURNING ` + clientTagColumns

func (s *Store) UpdateClientTag(ctx context.Context, id uuid.UUID, params UpdateClientTagParams) (ClientTag, error) {
	var tag ClientTag
	err := s.db.GetContext(ctx, &tag, s.rebind(sqlUpdateClientTag), params.Name, params.Color, params.Description, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClientTag{}, ErrNotFound
		}
		err = translateError(err)
		if errors.Is(err, ErrAlreadyExists) {
			return ClientTag{}, err
		}
		s.logger.Error(ctx, "failed to update client tag", err)
		return ClientTag{}, fmt.Errorf("failed to update client tag: %w", err)
	}
	return tag, nil
}

func (s *Store) DeleteClientTag(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM client_tag_links WHERE tag_id = ?`), id); err != nil {
			return err
		}
		return deleteByID(ctx, tx, s.rebind(`DELETE FROM client_tags WHERE id = ?`), id)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error(ctx, "failed to delete client tag", err)
		return fmt.Errorf("failed to delete client tag: %w", err)
	}
	return err
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const clientGroupColumns = `id, name, description, filter_criteria, is_dynamic, created_at, updated_at`

// CreateClientGroupParams represents parameters for creating a client group.
// FilterCriteria is stored as given; membership is always ClientIDs.
type CreateClientGroupParams struct {
	Name           string
	Description    *string
	FilterCriteria JSONB
	IsDynamic      bool
	ClientIDs      []uuid.UUID
}

type UpdateClientGroupParams struct {
	Name           *string
	Description    *string
	FilterCriteria JSONB
	IsDynamic      *bool
	ClientIDs      *[]uuid.UUID
}

var clientGroupListSpec = listSpec{
	from:    "client_groups",
	columns: clientGroupColumns,
	filters: map[string]filterColumn{
		"is_dynamic": {"is_dynamic", filterBool},
	},
	search:       []string{"name", "description"},
	ordering:     map[string]string{"name": "name", "created_at": "created_at"},
	defaultOrder: "created_at DESC",
	tiebreak:     "id",
}

const sqlCreateClientGroup = `
INSERT INTO client_groups (id, name, description, filter_criteria, is_dynamic, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING ` + clientGroupColumns

func (s *Store) CreateClientGroup(ctx context.Context, params CreateClientGroupParams) (ClientGroup, error) {
	var group ClientGroup
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		ts := now()
		if err := tx.GetContext(ctx, &group, s.rebind(sqlCreateClientGroup),
			newID(), params.Name, params.Description, params.FilterCriteria, params.IsDynamic, ts, ts); err != nil {
			return translateError(err)
		}
		if err := s.replaceLinks(ctx, tx, "client_group_members", "group_id", "client_id", group.ID, params.ClientIDs); err != nil {
			return err
		}
		return s.loadGroupMembers(ctx, tx, &group)
	})
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			return ClientGroup{}, err
		}
		s.logger.Error(ctx, "failed to create client group", err)
		return ClientGroup{}, fmt.Errorf("failed to create client group: %w", err)
	}
	return group, nil
}

func (s *Store) GetClientGroupByID(ctx context.Context, id uuid.UUID) (ClientGroup, error) {
	var group ClientGroup
	err := s.db.GetContext(ctx, &group, s.rebind(`SELECT `+clientGroupColumns+` FROM client_groups WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClientGroup{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get client group", err)
		return ClientGroup{}, fmt.Errorf("failed to get client group: %w", err)
	}
	if err := s.loadGroupMembers(ctx, s.db, &group); err != nil {
		return ClientGroup{}, err
	}
	return group, nil
}

func (s *Store) ListClientGroups(ctx context.Context, params ListParams) (Page[ClientGroup], error) {
	page, err := listPage[ClientGroup](ctx, s.db, s.rebind, clientGroupListSpec, params)
	if err != nil {
		if !errors.Is(err, ErrInvalidFilter) {
			s.logger.Error(ctx, "failed to list client groups", err)
		}
		return page, err
	}
	for i := range page.Results {
		if err := s.loadGroupMembers(ctx, s.db, &page.Results[i]); err != nil {
			return Page[ClientGroup]{}, err
		}
	}
	return page, nil
}

const sqlUpdateClientGroup = `
UPDATE client_groups
SET name = COALESCE(?, name),
    description = COALESCE(?, description),
    filter_criteria = COALESCE(?, filter_criteria),
    is_dynamic = COALESCE(?, is_dynamic),
    updated_at = ?
WHERE id = ?
RETURNING ` + clientGroupColumns

func (s *Store) UpdateClientGroup(ctx context.Context, id uuid.UUID, params UpdateClientGroupParams) (ClientGroup, error) {
	var group ClientGroup
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &group, s.rebind(sqlUpdateClientGroup),
			params.Name, params.Description, params.FilterCriteria, params.IsDynamic, now(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translateError(err)
		}
		if params.ClientIDs != nil {
			if err := s.replaceLinks(ctx, tx, "client_group_members", "group_id", "client_id", id, *params.ClientIDs); err != nil {
				return err
			}
		}
		return s.loadGroupMembers(ctx, tx, &group)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidReference) {
			return ClientGroup{}, err
		}
		s.logger.Error(ctx, "failed to update client group", err)
		return ClientGroup{}, fmt.Errorf("failed to update client group: %w", err)
	}
	return group, nil
}

// DeleteClientGroup removes a group; campaigns targeting it lose their group reference.
func (s *Store) DeleteClientGroup(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, s.rebind(`UPDATE campaigns SET client_group_id = NULL WHERE client_group_id = ?`), id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM client_group_members WHERE group_id = ?`), id); err != nil {
			return err
		}
		return deleteByID(ctx, tx, s.rebind(`DELETE FROM client_groups WHERE id = ?`), id)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error(ctx, "failed to delete client group", err)
		return fmt.Errorf("failed to delete client group: %w", err)
	}
	return err
}

func (s *Store) loadGroupMembers(ctx context.Context, q sqlx.QueryerContext, group *ClientGroup) error {
	group.ClientIDs = []uuid.UUID{}
	err := sqlx.SelectContext(ctx, q, &group.ClientIDs,
		s.rebind(`SELECT client_id FROM client_group_members WHERE group_id = ? ORDER BY client_id`), group.ID)
	if err != nil {
		return fmt.Errorf("failed to load group members: %w", err)
	}
	return nil
}

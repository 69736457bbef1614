package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const clientColumns = `id, first_name, last_name, email, phone, whatsapp, company, position, address,
status, source, notes, last_contacted, created_at, updated_at`

// CreateClientParams represents parameters for creating a client
type CreateClientParams struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         *string
	WhatsApp      *string
	Company       *string
	Position      *string
	Address       *string
	Status        string
	Source        *string
	Notes         *string
	LastContacted *time.Time
	TagIDs        []uuid.UUID
}

// UpdateClientParams represents parameters for updating a client. Nil
// fields are left unchanged; a non-nil TagIDs replaces the tag set.
type UpdateClientParams struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Phone         *string
	WhatsApp      *string
	Company       *string
	Position      *string
	Address       *string
	Status        *string
	Source        *string
	Notes         *string
	LastContacted *time.Time
	TagIDs        *[]uuid.UUID
}

var clientListSpec = listSpec{
	from:    "clients",
	columns: clientColumns,
	filters: map[string]filterColumn{
		"status": {"status", filterText},
		"source": {"source", filterText},
	},
	search: []string{"first_name", "last_name", "email", "phone", "company"},
	ordering: map[string]string{
		"created_at":     "created_at",
		"last_contacted": "last_contacted",
		"last_name":      "last_name",
	},
	defaultOrder: "created_at DESC",
	tiebreak:     "id",
}

const sqlCreateClient = `
INSERT INTO clients (id, first_name, last_name, email, phone, whatsapp, company, position, address,
    status, source, notes, last_contacted, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + clientColumns

// CreateClient creates a client and links its tags in one transaction
func (s *Store) CreateClient(ctx context.Context, params CreateClientParams) (Client, error) {
	var client Client
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		ts := now()
		if err := tx.GetContext(ctx, &client, s.rebind(sqlCreateClient),
			newID(), params.FirstName, params.LastName, params.Email, params.Phone, params.WhatsApp,
			params.Company, params.Position, params.Address, params.Status, params.Source, params.Notes,
			params.LastContacted, ts, ts); err != nil {
			return translateError(err)
		}
		if err := s.replaceLinks(ctx, tx, "client_tag_links", "client_id", "tag_id", client.ID, params.TagIDs); err != nil {
			return err
		}
		return s.loadClientRelations(ctx, tx, &client)
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) || errors.Is(err, ErrInvalidReference) {
			return Client{}, err
		}
		s.logger.Error(ctx, "failed to create client", err)
		return Client{}, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

const sqlGetClientByID = `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`

// GetClientByID retrieves a client with its tags and group memberships
func (s *Store) GetClientByID(ctx context.Context, id uuid.UUID) (Client, error) {
	var client Client
	err := s.db.GetContext(ctx, &client, s.rebind(sqlGetClientByID), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Client{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get client by id", err)
		return Client{}, fmt.Errorf("failed to get client by id: %w", err)
	}
	if err := s.loadClientRelations(ctx, s.db, &client); err != nil {
		return Client{}, err
	}
	return client, nil
}

// ListClients returns one page of clients matching the filters
func (s *Store) ListClients(ctx context.Context, params ListParams) (Page[Client], error) {
	page, err := listPage[Client](ctx, s.db, s.rebind, clientListSpec, params)
	if err != nil {
		if errors.Is(err, ErrInvalidFilter) {
			return Page[Client]{}, err
		}
		s.logger.Error(ctx, "failed to list clients", err)
		return Page[Client]{}, fmt.Errorf("failed to list clients: %w", err)
	}
	for i := range page.Results {
		if err := s.loadClientRelations(ctx, s.db, &page.Results[i]); err != nil {
			return Page[Client]{}, err
		}
	}
	return page, nil
}

const sqlUpdateClient = `
UPDATE clients
SET first_name = COALESCE(?, first_name),
    last_name = COALESCE(?, last_name),
    email = COALESCE(?, email),
    phone = COALESCE(?, phone),
    whatsapp = COALESCE(?, whatsapp),
    company = COALESCE(?, company),
    position = COALESCE(?, position),
    address = COALESCE(?, address),
    status = COALESCE(?, status),
    source = COALESCE(?, source),
    notes = COALESCE(?, notes),
    last_contacted = COALESCE(?, last_contacted),
    updated_at = ?
WHERE id = ?
RETURNING ` + clientColumns

// UpdateClient applies a partial update to a client
func (s *Store) UpdateClient(ctx context.Context, id uuid.UUID, params UpdateClientParams) (Client, error) {
	var client Client
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &client, s.rebind(sqlUpdateClient),
			params.FirstName, params.LastName, params.Email, params.Phone, params.WhatsApp,
			params.Company, params.Position, params.Address, params.Status, params.Source,
			params.Notes, params.LastContacted, now(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translateError(err)
		}
		if params.TagIDs != nil {
			if err := s.replaceLinks(ctx, tx, "client_tag_links", "client_id", "tag_id", id, *params.TagIDs); err != nil {
				return err
			}
		}
		return s.loadClientRelations(ctx, tx, &client)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyExists) || errors.Is(err, ErrInvalidReference) {
			return Client{}, err
		}
		s.logger.Error(ctx, "failed to update client", err)
		return Client{}, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// DeleteClient removes a client. Messages and reports keep their rows with
// the client reference cleared; engagement rows and memberships go with it.
func (s *Store) DeleteClient(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		stmts := []string{
			`UPDATE messages SET client_id = NULL WHERE client_id = ?`,
			`UPDATE report_data SET client_id = NULL WHERE client_id = ?`,
			`DELETE FROM client_engagement WHERE client_id = ?`,
			`DELETE FROM client_tag_links WHERE client_id = ?`,
			`DELETE FROM client_group_members WHERE client_id = ?`,
			`DELETE FROM campaign_clients WHERE client_id = ?`,
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, s.rebind(stmt), id); err != nil {
				return err
			}
		}
		return deleteByID(ctx, tx, s.rebind(`DELETE FROM clients WHERE id = ?`), id)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "failed to delete client", err)
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

const sqlSelectTagsForClient = `
SELECT t.id, t.name, t.color, t.description, t.created_at
FROM client_tags t
JOIN client_tag_links l ON l.tag_id = t.id
WHERE l.client_id = ?
ORDER BY t.name`

const sqlSelectGroupIDsForClient = `
SELECT group_id FROM client_group_members WHERE client_id = ? ORDER BY group_id`

func (s *Store) loadClientRelations(ctx context.Context, q sqlx.QueryerContext, client *Client) error {
	client.FullName = client.GetFullName()
	client.Tags = []ClientTag{}
	if err := sqlx.SelectContext(ctx, q, &client.Tags, s.rebind(sqlSelectTagsForClient), client.ID); err != nil {
		return fmt.Errorf("failed to load client tags: %w", err)
	}
	client.GroupIDs = []uuid.UUID{}
	if err := sqlx.SelectContext(ctx, q, &client.GroupIDs, s.rebind(sqlSelectGroupIDsForClient), client.ID); err != nil {
		return fmt.Errorf("failed to load client groups: %w", err)
	}
	return nil
}

// replaceLinks rewrites the rows of a two-column join table owned by ownerID.
func (s *Store) replaceLinks(ctx context.Context, tx *sqlx.Tx, table, ownerCol, otherCol string, ownerID uuid.UUID, otherIDs []uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, s.rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, table, ownerCol)), ownerID); err != nil {
		return err
	}
	insert := s.rebind(fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (?, ?)`, table, ownerCol, otherCol))
	seen := make(map[uuid.UUID]bool, len(otherIDs))
	for _, other := range otherIDs {
		if seen[other] {
			continue
		}
		seen[other] = true
		if _, err := tx.ExecContext(ctx, insert, ownerID, other); err != nil {
			return translateError(err)
		}
	}
	return nil
}

func deleteByID(ctx context.Context, tx *sqlx.Tx, query string, id uuid.UUID) error {
	res, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

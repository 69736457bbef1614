package processor

import (
	"context"
	"errors"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// CreateGroup stores a group with an explicit member list. FilterCriteria
// is kept as given; membership is never derived from it.
func (p *ClientProcessor) CreateGroup(ctx context.Context, params store.CreateClientGroupParams) (store.ClientGroup, error) {
	group, err := p.store.CreateClientGroup(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return store.ClientGroup{}, ErrUnknownClient
		}
		p.logger.Error(ctx, "failed to create client group", err)
		return store.ClientGroup{}, err
	}
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "group_id", Value: group.ID.String()},
		observability.Field{Key: "member_count", Value: len(group.ClientIDs)},
	), "client group created")
	return group, nil
}

func (p *ClientProcessor) GetGroup(ctx context.Context, id uuid.UUID) (store.ClientGroup, error) {
	group, err := p.store.GetClientGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ClientGroup{}, ErrGroupNotFound
		}
		p.logger.Error(ctx, "failed to get client group", err)
		return store.ClientGroup{}, err
	}
	return group, nil
}

func (p *ClientProcessor) ListGroups(ctx context.Context, params store.ListParams) (store.Page[store.ClientGroup], error) {
	page, err := p.store.ListClientGroups(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list client groups", err)
	}
	return page, err
}

func (p *ClientProcessor) UpdateGroup(ctx context.Context, id uuid.UUID, params store.UpdateClientGroupParams) (store.ClientGroup, error) {
	group, err := p.store.UpdateClientGroup(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.ClientGroup{}, ErrGroupNotFound
		case errors.Is(err, store.ErrInvalidReference):
			return store.ClientGroup{}, ErrUnknownClient
		}
		p.logger.Error(ctx, "failed to update client group", err)
		return store.ClientGroup{}, err
	}
	return group, nil
}

// DeleteGroup removes a group; campaigns targeting it keep running without an audience group.
func (p *ClientProcessor) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if err := p.store.DeleteClientGroup(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrGroupNotFound
		}
		p.logger.Error(ctx, "failed to delete client group", err)
		return err
	}
	return nil
}

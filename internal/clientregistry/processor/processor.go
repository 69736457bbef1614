package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// ClientStore defines the database operations required by ClientProcessor
type ClientStore interface {
	CreateClient(ctx context.Context, params store.CreateClientParams) (store.Client, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (store.Client, error)
	ListClients(ctx context.Context, params store.ListParams) (store.Page[store.Client], error)
	UpdateClient(ctx context.Context, id uuid.UUID, params store.UpdateClientParams) (store.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error

	CreateClientTag(ctx context.Context, params store.CreateClientTagParams) (store.ClientTag, error)
	GetClientTagByID(ctx context.Context, id uuid.UUID) (store.ClientTag, error)
	ListClientTags(ctx context.Context, params store.ListParams) (store.Page[store.ClientTag], error)
	UpdateClientTag(ctx context.Context, id uuid.UUID, params store.UpdateClientTagParams) (store.ClientTag, error)
	DeleteClientTag(ctx context.Context, id uuid.UUID) error

	CreateClientGroup(ctx context.Context, params store.CreateClientGroupParams) (store.ClientGroup, error)
	GetClientGroupByID(ctx context.Context, id uuid.UUID) (store.ClientGroup, error)
	ListClientGroups(ctx context.Context, params store.ListParams) (store.Page[store.ClientGroup], error)
	UpdateClientGroup(ctx context.Context, id uuid.UUID, params store.UpdateClientGroupParams) (store.ClientGroup, error)
	DeleteClientGroup(ctx context.Context, id uuid.UUID) error
}

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrEmailAlreadyExists = errors.New("a client with this email already exists")
	ErrTagNotFound        = errors.New("client tag not found")
	ErrTagAlreadyExists   = errors.New("a tag with this name already exists")
	ErrGroupNotFound      = errors.New("client group not found")
	ErrUnknownTag         = errors.New("one or more tags do not exist")
	ErrUnknownClient      = errors.New("one or more clients do not exist")
)

const defaultTagColor = "#000000"

type ClientProcessor struct {
	store  ClientStore
	logger *observability.Logger
}

func New(store ClientStore, logger *observability.Logger) ClientProcessor {
	return ClientProcessor{
		store:  store,
		logger: logger,
	}
}

func clientFields(ctx context.Context, id uuid.UUID) context.Context {
	return observability.WithFields(ctx, observability.Field{Key: "client_id", Value: id.String()})
}

// CreateClient registers a client. Status defaults to active.
func (p *ClientProcessor) CreateClient(ctx context.Context, params store.CreateClientParams) (store.Client, error) {
	params.Email = strings.TrimSpace(params.Email)
	if params.Status == "" {
		params.Status = store.ClientStatusActive
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_email", Value: params.Email})

	client, err := p.store.CreateClient(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return store.Client{}, ErrEmailAlreadyExists
		case errors.Is(err, store.ErrInvalidReference):
			return store.Client{}, ErrUnknownTag
		}
		p.logger.Error(ctx, "failed to create client", err)
		return store.Client{}, err
	}

	p.logger.Info(clientFields(ctx, client.ID), "client created")
	return client, nil
}

func (p *ClientProcessor) GetClient(ctx context.Context, id uuid.UUID) (store.Client, error) {
	client, err := p.store.GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Client{}, ErrClientNotFound
		}
		p.logger.Error(clientFields(ctx, id), "failed to get client", err)
		return store.Client{}, err
	}
	return client, nil
}

func (p *ClientProcessor) ListClients(ctx context.Context, params store.ListParams) (store.Page[store.Client], error) {
	page, err := p.store.ListClients(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list clients", err)
	}
	return page, err
}

func (p *ClientProcessor) UpdateClient(ctx context.Context, id uuid.UUID, params store.UpdateClientParams) (store.Client, error) {
	ctx = clientFields(ctx, id)
	if params.Email != nil {
		trimmed := strings.TrimSpace(*params.Email)
		params.Email = &trimmed
	}

	client, err := p.store.UpdateClient(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Client{}, ErrClientNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return store.Client{}, ErrEmailAlreadyExists
		case errors.Is(err, store.ErrInvalidReference):
			return store.Client{}, ErrUnknownTag
		}
		p.logger.Error(ctx, "failed to update client", err)
		return store.Client{}, err
	}
	return client, nil
}

// DeleteClient removes a client. Messages and reports that referenced it are kept.
func (p *ClientProcessor) DeleteClient(ctx context.Context, id uuid.UUID) error {
	ctx = clientFields(ctx, id)
	if err := p.store.DeleteClient(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		p.logger.Error(ctx, "failed to delete client", err)
		return err
	}
	p.logger.Info(ctx, "client deleted")
	return nil
}

package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// MessageStore defines the database operations required by MessageProcessor
type MessageStore interface {
	CreateMessage(ctx context.Context, params store.CreateMessageParams) (store.Message, error)
	GetMessageByID(ctx context.Context, id uuid.UUID) (store.Message, error)
	ListMessages(ctx context.Context, params store.ListParams) (store.Page[store.Message], error)
	UpdateMessage(ctx context.Context, id uuid.UUID, params store.UpdateMessageParams) (store.Message, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
	MarkMessages(ctx context.Context, ids []uuid.UUID, mark store.MessageMark, at time.Time) ([]store.Message, error)
	MarkMessagesFailed(ctx context.Context, ids []uuid.UUID, details *string) ([]store.Message, error)

	CreateMessageAttachment(ctx context.Context, params store.CreateMessageAttachmentParams) (store.MessageAttachment, error)
	GetMessageAttachmentByID(ctx context.Context, id uuid.UUID) (store.MessageAttachment, error)
	ListMessageAttachments(ctx context.Context, params store.ListParams) (store.Page[store.MessageAttachment], error)
	DeleteMessageAttachment(ctx context.Context, id uuid.UUID) error

	CreateMessageEvent(ctx context.Context, params store.CreateMessageEventParams) (store.MessageEvent, error)
	GetMessageEventByID(ctx context.Context, id uuid.UUID) (store.MessageEvent, error)
	ListMessageEvents(ctx context.Context, params store.ListParams) (store.Page[store.MessageEvent], error)
}

var (
	ErrMessageNotFound    = errors.New("message not found")
	ErrAttachmentNotFound = errors.New("message attachment not found")
	ErrEventNotFound      = errors.New("message event not found")
	ErrInvalidReference   = errors.New("message references a client, campaign or template that does not exist")
	ErrUnknownMessage     = errors.New("message does not exist")
	ErrMissingRecipient   = errors.New("an email message needs to_email and a whatsapp message needs to_number")
)

type MessageProcessor struct {
	store  MessageStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store MessageStore, logger *observability.Logger) MessageProcessor {
	return MessageProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func messageFields(ctx context.Context, id uuid.UUID) context.Context {
	return observability.WithFields(ctx, observability.Field{Key: "message_id", Value: id.String()})
}

func checkRecipient(messageType string, toEmail, toNumber *string) error {
	switch messageType {
	case store.ChannelEmail:
		if toEmail == nil || *toEmail == "" {
			return ErrMissingRecipient
		}
	case store.ChannelWhatsApp:
		if toNumber == nil || *toNumber == "" {
			return ErrMissingRecipient
		}
	}
	return nil
}

// CreateMessage records a message. Status defaults to draft and direction
// to outgoing; outgoing messages need a recipient for their channel.
func (p *MessageProcessor) CreateMessage(ctx context.Context, params store.CreateMessageParams) (store.Message, error) {
	if params.Status == "" {
		params.Status = store.MessageStatusDraft
	}
	if params.Direction == "" {
		params.Direction = store.MessageDirectionOutgoing
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "message_type", Value: params.Type},
		observability.Field{Key: "direction", Value: params.Direction},
	)

	if params.Direction == store.MessageDirectionOutgoing {
		if err := checkRecipient(params.Type, params.ToEmail, params.ToNumber); err != nil {
			return store.Message{}, err
		}
	}

	msg, err := p.store.CreateMessage(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return store.Message{}, ErrInvalidReference
		}
		p.logger.Error(ctx, "failed to create message", err)
		return store.Message{}, err
	}

	p.logger.Info(messageFields(ctx, msg.ID), "message recorded")
	return msg, nil
}

func (p *MessageProcessor) GetMessage(ctx context.Context, id uuid.UUID) (store.Message, error) {
	msg, err := p.store.GetMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Message{}, ErrMessageNotFound
		}
		p.logger.Error(messageFields(ctx, id), "failed to get message", err)
		return store.Message{}, err
	}
	return msg, nil
}

func (p *MessageProcessor) ListMessages(ctx context.Context, params store.ListParams) (store.Page[store.Message], error) {
	page, err := p.store.ListMessages(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list messages", err)
	}
	return page, err
}

func (p *MessageProcessor) UpdateMessage(ctx context.Context, id uuid.UUID, params store.UpdateMessageParams) (store.Message, error) {
	ctx = messageFields(ctx, id)

	msg, err := p.store.UpdateMessage(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Message{}, ErrMessageNotFound
		case errors.Is(err, store.ErrInvalidReference):
			return store.Message{}, ErrInvalidReference
		}
		p.logger.Error(ctx, "failed to update message", err)
		return store.Message{}, err
	}
	return msg, nil
}

// DeleteMessage removes a message with its attachments and events.
func (p *MessageProcessor) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	ctx = messageFields(ctx, id)
	if err := p.store.DeleteMessage(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMessageNotFound
		}
		p.logger.Error(ctx, "failed to delete message", err)
		return err
	}
	p.logger.Info(ctx, "message deleted")
	return nil
}

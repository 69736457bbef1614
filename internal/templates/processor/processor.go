package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// TemplateStore defines the database operations required by TemplateProcessor
type TemplateStore interface {
	CreateTemplate(ctx context.Context, params store.CreateTemplateParams) (store.MessageTemplate, error)
	GetTemplateByID(ctx context.Context, id uuid.UUID) (store.MessageTemplate, error)
	ListTemplates(ctx context.Context, params store.ListParams) (store.Page[store.MessageTemplate], error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, params store.UpdateTemplateParams) (store.MessageTemplate, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	DuplicateTemplate(ctx context.Context, id uuid.UUID, suffix string) (store.MessageTemplate, error)

	CreateTemplateCategory(ctx context.Context, params store.CreateTemplateCategoryParams) (store.TemplateCategory, error)
	GetTemplateCategoryByID(ctx context.Context, id uuid.UUID) (store.TemplateCategory, error)
	ListTemplateCategories(ctx context.Context, params store.ListParams) (store.Page[store.TemplateCategory], error)
	UpdateTemplateCategory(ctx context.Context, id uuid.UUID, params store.UpdateTemplateCategoryParams) (store.TemplateCategory, error)
	DeleteTemplateCategory(ctx context.Context, id uuid.UUID) error

	CreateTemplateAttachment(ctx context.Context, params store.CreateTemplateAttachmentParams) (store.TemplateAttachment, error)
	GetTemplateAttachmentByID(ctx context.Context, id uuid.UUID) (store.TemplateAttachment, error)
	ListTemplateAttachments(ctx context.Context, params store.ListParams) (store.Page[store.TemplateAttachment], error)
	DeleteTemplateAttachment(ctx context.Context, id uuid.UUID) error
}

var (
	ErrTemplateNotFound      = errors.New("template not found")
	ErrCategoryNotFound      = errors.New("template category not found")
	ErrCategoryAlreadyExists = errors.New("a category with this name already exists")
	ErrAttachmentNotFound    = errors.New("template attachment not found")
	ErrUnknownTemplate       = errors.New("template does not exist")
	ErrUnknownCategory       = errors.New("one or more categories do not exist")
	ErrInvalidTemplateSyntax = errors.New("invalid template syntax")
)

// DuplicateSuffix is appended to the name of every duplicated template.
const DuplicateSuffix = " (copy)"

type TemplateProcessor struct {
	store  TemplateStore
	logger *observability.Logger
}

func New(store TemplateStore, logger *observability.Logger) TemplateProcessor {
	return TemplateProcessor{
		store:  store,
		logger: logger,
	}
}

func templateFields(ctx context.Context, id uuid.UUID) context.Context {
	return observability.WithFields(ctx, observability.Field{Key: "template_id", Value: id.String()})
}

// CreateTemplate validates the subject and body syntax and stores the template.
func (p *TemplateProcessor) CreateTemplate(ctx context.Context, params store.CreateTemplateParams) (store.MessageTemplate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "template_type", Value: params.Type})

	if err := validateSyntax(params.Body, params.Subject, params.IsHTML); err != nil {
		return store.MessageTemplate{}, err
	}

	tmpl, err := p.store.CreateTemplate(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return store.MessageTemplate{}, ErrUnknownCategory
		}
		p.logger.Error(ctx, "failed to create template", err)
		return store.MessageTemplate{}, err
	}

	p.logger.Info(templateFields(ctx, tmpl.ID), "template created")
	return tmpl, nil
}

func (p *TemplateProcessor) GetTemplate(ctx context.Context, id uuid.UUID) (store.MessageTemplate, error) {
	tmpl, err := p.store.GetTemplateByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.MessageTemplate{}, ErrTemplateNotFound
		}
		p.logger.Error(templateFields(ctx, id), "failed to get template", err)
		return store.MessageTemplate{}, err
	}
	return tmpl, nil
}

func (p *TemplateProcessor) ListTemplates(ctx context.Context, params store.ListParams) (store.Page[store.MessageTemplate], error) {
	page, err := p.store.ListTemplates(ctx, params)
	if err != nil && !errors.Is(err, store.ErrInvalidFilter) {
		p.logger.Error(ctx, "failed to list templates", err)
	}
	return page, err
}

// UpdateTemplate checks the syntax of the fields being changed. When only
// one of body/is_html changes the stored template supplies the other.
func (p *TemplateProcessor) UpdateTemplate(ctx context.Context, id uuid.UUID, params store.UpdateTemplateParams) (store.MessageTemplate, error) {
	ctx = templateFields(ctx, id)

	if params.Body != nil || params.Subject != nil || params.IsHTML != nil {
		current, err := p.GetTemplate(ctx, id)
		if err != nil {
			return store.MessageTemplate{}, err
		}
		body, subject, isHTML := current.Body, current.Subject, current.IsHTML
		if params.Body != nil {
			body = *params.Body
		}
		if params.Subject != nil {
			subject = params.Subject
		}
		if params.IsHTML != nil {
			isHTML = *params.IsHTML
		}
		if err := validateSyntax(body, subject, isHTML); err != nil {
			return store.MessageTemplate{}, err
		}
	}

	tmpl, err := p.store.UpdateTemplate(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.MessageTemplate{}, ErrTemplateNotFound
		case errors.Is(err, store.ErrInvalidReference):
			return store.MessageTemplate{}, ErrUnknownCategory
		}
		p.logger.Error(ctx, "failed to update template", err)
		return store.MessageTemplate{}, err
	}
	return tmpl, nil
}

// DeleteTemplate removes a template and its attachments. Campaigns and
// messages that referenced it keep their rows.
func (p *TemplateProcessor) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	ctx = templateFields(ctx, id)
	if err := p.store.DeleteTemplate(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to delete template", err)
		return err
	}
	p.logger.Info(ctx, "template deleted")
	return nil
}

// DuplicateTemplates copies each template with its categories and
// attachments. Unknown IDs are skipped; the copies are returned in input order.
func (p *TemplateProcessor) DuplicateTemplates(ctx context.Context, ids []uuid.UUID) ([]store.MessageTemplate, error) {
	copies := make([]store.MessageTemplate, 0, len(ids))
	for _, id := range ids {
		tmpl, err := p.store.DuplicateTemplate(ctx, id, DuplicateSuffix)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				p.logger.Warn(templateFields(ctx, id), "skipping duplicate of missing template")
				continue
			}
			p.logger.Error(templateFields(ctx, id), "failed to duplicate template", err)
			return nil, err
		}
		copies = append(copies, tmpl)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "requested", Value: len(ids)},
		observability.Field{Key: "duplicated", Value: len(copies)},
	), "templates duplicated")
	return copies, nil
}

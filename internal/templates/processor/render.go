package processor

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"text/template"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// Rendered is the result of rendering a template. Subject is only set for
// email templates that have one.
type Rendered struct {
	Subject *string `json:"subject,omitempty"`
	Body    string  `json:"body"`
}

// RenderTemplate substitutes vars into the template body, and into the
// subject for email templates. Variables missing from vars render as
// empty strings.
func (p *TemplateProcessor) RenderTemplate(ctx context.Context, id uuid.UUID, vars map[string]any) (Rendered, error) {
	tmpl, err := p.GetTemplate(ctx, id)
	if err != nil {
		return Rendered{}, err
	}
	return Render(tmpl, vars)
}

// Render is the pure rendering step behind RenderTemplate.
func Render(tmpl store.MessageTemplate, vars map[string]any) (Rendered, error) {
	data := stringifyVars(vars)

	body, err := renderText(tmpl.Body, tmpl.IsHTML, data)
	if err != nil {
		return Rendered{}, err
	}
	out := Rendered{Body: body}

	if tmpl.Type == store.ChannelEmail && tmpl.Subject != nil && *tmpl.Subject != "" {
		subject, err := renderText(*tmpl.Subject, false, data)
		if err != nil {
			return Rendered{}, err
		}
		out.Subject = &subject
	}
	return out, nil
}

func stringifyVars(vars map[string]any) map[string]string {
	data := make(map[string]string, len(vars))
	for k, v := range vars {
		if v == nil {
			data[k] = ""
			continue
		}
		data[k] = fmt.Sprint(v)
	}
	return data
}

func renderText(content string, isHTML bool, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if isHTML {
		t, err := htmltemplate.New("body").Option("missingkey=zero").Parse(content)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidTemplateSyntax, err)
		}
		if err := t.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to execute template: %w", err)
		}
		return buf.String(), nil
	}

	t, err := template.New("body").Option("missingkey=zero").Parse(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplateSyntax, err)
	}
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func validateSyntax(body string, subject *string, isHTML bool) error {
	if isHTML {
		if _, err := htmltemplate.New("validate").Parse(body); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTemplateSyntax, err)
		}
	} else if _, err := template.New("validate").Parse(body); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplateSyntax, err)
	}
	if subject != nil {
		if _, err := template.New("validate").Parse(*subject); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTemplateSyntax, err)
		}
	}
	return nil
}

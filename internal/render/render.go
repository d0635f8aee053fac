// Package render turns a form schema into a fillable HTML page.
package render

import (
	"embed"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"formportal/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

const formTemplate = "templates/form.html"

// Renderer executes the embedded form template. The compiled template is
// read-only after New, so a Renderer is safe for concurrent use.
type Renderer struct {
	form      *pongo2.Template
	sanitizer *bluemonday.Policy
	newID     func() uuid.UUID
}

// New loads and compiles the form template.
func New() (*Renderer, error) {
	set := pongo2.NewSet("formportal", pongo2.NewFSLoader(templatesFS))
	tpl, err := set.FromFile(formTemplate)
	if err != nil {
		return nil, fmt.Errorf("render: compile %s: %w", formTemplate, err)
	}
	return &Renderer{
		form:      tpl,
		sanitizer: bluemonday.UGCPolicy(),
		newID:     uuid.New,
	}, nil
}

type fieldView struct {
	ID          string
	Label       string
	Type        string
	InputType   string
	Required    bool
	Placeholder string
	Options     []model.FieldOption
}

// SubmitPath returns the submission target for a form id.
func SubmitPath(id uuid.UUID) string {
	return "/api/forms/" + id.String() + "/submit"
}

// Render produces the HTML document for schema. Fields appear in stored order.
// When schema.ID is unset a throwaway id is used for the form action only;
// schema itself is not modified.
func (r *Renderer) Render(schema *model.FormSchema) (string, error) {
	id := schema.ID
	if id == uuid.Nil {
		id = r.newID()
	}

	fields := make([]fieldView, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		v := fieldView{
			ID:        f.ID,
			Label:     f.Label,
			Type:      string(f.FieldType),
			InputType: strings.ToLower(string(f.FieldType)),
			Required:  f.Required,
			Options:   f.Options,
		}
		if f.Placeholder != nil {
			v.Placeholder = *f.Placeholder
		}
		fields = append(fields, v)
	}

	var description string
	if schema.Description != nil {
		description = strings.TrimSpace(r.sanitizer.Sanitize(*schema.Description))
	}

	out, err := r.form.Execute(pongo2.Context{
		"name":        schema.Name,
		"description": description,
		"action":      SubmitPath(id),
		"fields":      fields,
	})
	if err != nil {
		return "", fmt.Errorf("render: execute form template: %w", err)
	}
	return out, nil
}

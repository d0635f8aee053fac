// Package repository declares the persistence contracts for form schemas and
// their responses. Implementations live in subpackages (e.g., postgres).
package repository

import (
	"context"

	"github.com/google/uuid"

	"formportal/internal/model"
)

// FormSchemaRepository persists form definitions. Schemas are never updated or deleted.
type FormSchemaRepository interface {
	// Create stores the schema, assigning an id when schema.ID is uuid.Nil, and
	// provisions the schema's empty response partition.
	Create(ctx context.Context, schema *model.FormSchema) (uuid.UUID, error)

	// FindByID returns the schema or an apperr NotFound error.
	FindByID(ctx context.Context, id uuid.UUID) (*model.FormSchema, error)
}

// FormResponseRepository persists submissions, partitioned per form.
type FormResponseRepository interface {
	// Create stores the response in its form's partition. The form must exist;
	// this is not checked here.
	Create(ctx context.Context, resp *model.FormResponse) (uuid.UUID, error)

	// ListByFormID returns every response of the form in storage order.
	ListByFormID(ctx context.Context, formID uuid.UUID) ([]model.FormResponse, error)
}

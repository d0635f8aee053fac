package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"formportal/internal/apperr"
	"formportal/internal/model"
	"formportal/internal/repository"
)

// FormSchemaPostgres is a PostgreSQL implementation of repository.FormSchemaRepository.
// Fields are stored as a JSON text blob; each schema owns a dedicated response table.
type FormSchemaPostgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewFormSchemaPostgres creates a new FormSchemaPostgres repository.
func NewFormSchemaPostgres(db *sql.DB) *FormSchemaPostgres {
	return &FormSchemaPostgres{db: db, now: func() time.Time { return time.Now().UTC() }}
}

var _ repository.FormSchemaRepository = (*FormSchemaPostgres)(nil)

// Create inserts the schema row and provisions its response table in one
// transaction, so a failed provisioning leaves no schema behind.
func (r *FormSchemaPostgres) Create(ctx context.Context, schema *model.FormSchema) (uuid.UUID, error) {
	id := schema.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	fields := schema.Fields
	if fields == nil {
		fields = []model.FormField{}
	}
	blob, err := json.Marshal(fields)
	if err != nil {
		return uuid.Nil, apperr.Internal(err, "failed to serialize fields")
	}

	now := r.now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, apperr.Storage(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	const q = `
		INSERT INTO form_schemas (id, name, description, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.ExecContext(ctx, q,
		id,
		schema.Name,
		schema.Description,
		string(blob),
		now,
		now,
	); err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, apperr.BadRequest("form schema with ID %s already exists", id)
		}
		return uuid.Nil, apperr.Storage(err, "failed to insert form schema")
	}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id         UUID        PRIMARY KEY,
		form_id    UUID        NOT NULL,
		data       TEXT        NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`, quotedResponseTable(id))
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return uuid.Nil, apperr.Storage(err, "failed to create form responses table")
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, apperr.Storage(err, "failed to commit form schema")
	}
	return id, nil
}

// FindByID fetches a schema and decodes its field blob.
func (r *FormSchemaPostgres) FindByID(ctx context.Context, id uuid.UUID) (*model.FormSchema, error) {
	const q = `
		SELECT id, name, description, fields, created_at, updated_at
		FROM form_schemas
		WHERE id = $1
	`
	var (
		s           model.FormSchema
		description sql.NullString
		blob        string
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID,
		&s.Name,
		&description,
		&blob,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("form schema with ID %s not found", id)
		}
		return nil, apperr.Storage(err, "failed to fetch form schema")
	}

	if err := json.Unmarshal([]byte(blob), &s.Fields); err != nil {
		return nil, apperr.Internal(err, "failed to deserialize fields")
	}
	if s.Fields == nil {
		s.Fields = []model.FormField{}
	}
	if description.Valid {
		s.Description = &description.String
	}
	if createdAt.Valid {
		t := createdAt.Time.UTC()
		s.CreatedAt = &t
	}
	if updatedAt.Valid {
		t := updatedAt.Time.UTC()
		s.UpdatedAt = &t
	}
	return &s, nil
}

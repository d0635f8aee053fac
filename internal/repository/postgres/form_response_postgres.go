package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"formportal/internal/apperr"
	"formportal/internal/model"
	"formportal/internal/repository"
)

// FormResponsePostgres is a PostgreSQL implementation of repository.FormResponseRepository.
// Responses live in the per-form table provisioned by FormSchemaPostgres.Create.
type FormResponsePostgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewFormResponsePostgres creates a new FormResponsePostgres repository.
func NewFormResponsePostgres(db *sql.DB) *FormResponsePostgres {
	return &FormResponsePostgres{db: db, now: func() time.Time { return time.Now().UTC() }}
}

var _ repository.FormResponseRepository = (*FormResponsePostgres)(nil)

// Create inserts a response with a server-set created_at. A missing response
// table surfaces as a storage error.
func (r *FormResponsePostgres) Create(ctx context.Context, resp *model.FormResponse) (uuid.UUID, error) {
	id := resp.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	data := resp.Data
	if data == nil {
		data = map[string]any{}
	}
	blob, err := json.Marshal(data)
	if err != nil {
		return uuid.Nil, apperr.Internal(err, "failed to serialize form data")
	}

	q := fmt.Sprintf(
		`INSERT INTO %s (id, form_id, data, created_at) VALUES ($1, $2, $3, $4)`,
		quotedResponseTable(resp.FormID),
	)
	if _, err := r.db.ExecContext(ctx, q, id, resp.FormID, string(blob), r.now()); err != nil {
		return uuid.Nil, apperr.Storage(err, "failed to insert form response")
	}
	return id, nil
}

// ListByFormID reads the whole response table. No ORDER BY is applied, so the
// order is whatever the database returns. One corrupt row fails the call.
func (r *FormResponsePostgres) ListByFormID(ctx context.Context, formID uuid.UUID) ([]model.FormResponse, error) {
	q := fmt.Sprintf(
		`SELECT id, form_id, data, created_at FROM %s`,
		quotedResponseTable(formID),
	)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, apperr.Storage(err, "failed to fetch form responses")
	}
	defer rows.Close()

	items := make([]model.FormResponse, 0)
	for rows.Next() {
		var (
			resp      model.FormResponse
			blob      string
			createdAt time.Time
		)
		if err := rows.Scan(&resp.ID, &resp.FormID, &blob, &createdAt); err != nil {
			return nil, apperr.Internal(err, "failed to read form response row")
		}
		if err := json.Unmarshal([]byte(blob), &resp.Data); err != nil {
			return nil, apperr.Internal(err, "failed to deserialize response data")
		}
		if resp.Data == nil {
			resp.Data = map[string]any{}
		}
		createdAt = createdAt.UTC()
		resp.CreatedAt = &createdAt
		items = append(items, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err, "failed to fetch form responses")
	}
	return items, nil
}

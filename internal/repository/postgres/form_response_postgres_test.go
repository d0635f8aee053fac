package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formportal/internal/apperr"
	"formportal/internal/model"
)

func TestFormResponsePostgres_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	formID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	insert := regexp.QuoteMeta(`INSERT INTO "form_responses_11111111222233334444555555555555" (id, form_id, data, created_at)`)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewFormResponsePostgres(db)
		repo.now = func() time.Time { return now }

		mock.ExpectExec(insert).
			WithArgs(sqlmock.AnyArg(), formID, `{"age":42.5,"email":"a@b.com","subscribe":true}`, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := repo.Create(ctx, &model.FormResponse{
			FormID: formID,
			Data:   map[string]any{"email": "a@b.com", "age": 42.5, "subscribe": true},
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil data stored as empty object", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewFormResponsePostgres(db)
		given := uuid.New()

		mock.ExpectExec(insert).
			WithArgs(given, formID, `{}`, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := repo.Create(ctx, &model.FormResponse{ID: given, FormID: formID})

		require.NoError(t, err)
		assert.Equal(t, given, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing table", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(insert).
			WillReturnError(errors.New(`relation "form_responses_11111111222233334444555555555555" does not exist`))

		_, err = NewFormResponsePostgres(db).Create(ctx, &model.FormResponse{FormID: formID})

		assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "failed to insert form response")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFormResponsePostgres_ListByFormID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFormResponsePostgres(db)
	ctx := context.Background()
	formID := uuid.New()
	selectQ := regexp.QuoteMeta(`SELECT id, form_id, data, created_at FROM "` + ResponseTableName(formID) + `"`)
	columns := []string{"id", "form_id", "data", "created_at"}
	created := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	t.Run("rows", func(t *testing.T) {
		r1, r2 := uuid.New(), uuid.New()
		rows := sqlmock.NewRows(columns).
			AddRow(r1.String(), formID.String(), `{"email":"a@b.com"}`, created).
			AddRow(r2.String(), formID.String(), `{"age":null,"ok":true}`, created)

		mock.ExpectQuery(selectQ).WillReturnRows(rows)

		items, err := repo.ListByFormID(ctx, formID)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, r1, items[0].ID)
		assert.Equal(t, formID, items[0].FormID)
		assert.Equal(t, "a@b.com", items[0].Data["email"])
		assert.Nil(t, items[1].Data["age"])
		assert.Equal(t, true, items[1].Data["ok"])
		assert.Equal(t, created, *items[0].CreatedAt)
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(selectQ).WillReturnRows(sqlmock.NewRows(columns))

		items, err := repo.ListByFormID(ctx, formID)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("one corrupt row fails the call", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), formID.String(), `{"email":"a@b.com"}`, created).
			AddRow(uuid.NewString(), formID.String(), `not-json`, created)

		mock.ExpectQuery(selectQ).WillReturnRows(rows)

		items, err := repo.ListByFormID(ctx, formID)

		assert.Nil(t, items)
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "failed to deserialize response data")
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(selectQ).WillReturnError(errors.New("relation does not exist"))

		_, err := repo.ListByFormID(ctx, formID)

		assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

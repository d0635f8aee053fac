package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"formportal/internal/apperr"
	"formportal/internal/cache"
	"formportal/internal/model"
	"formportal/internal/repository"
	"formportal/internal/storage"
)

// DefaultExportURLTTL applies when FormServiceDeps.ExportURLTTL is zero.
const DefaultExportURLTTL = 15 * time.Minute

// Renderer turns a schema into an HTML document.
type Renderer interface {
	Render(schema *model.FormSchema) (string, error)
}

// ExportResult describes an uploaded response export.
type ExportResult struct {
	Key   string `json:"key"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// exportDocument is the JSON layout written to object storage.
type exportDocument struct {
	FormID     uuid.UUID            `json:"form_id"`
	FormName   string               `json:"form_name"`
	ExportedAt time.Time            `json:"exported_at"`
	Count      int                  `json:"count"`
	Responses  []model.FormResponse `json:"responses"`
}

// FormService defines the use cases for form schemas and their responses.
type FormService interface {
	// Register stores a new schema and provisions its response storage.
	Register(ctx context.Context, schema *model.FormSchema) (uuid.UUID, error)

	// Get returns a schema by ID, reading through the schema cache when configured.
	Get(ctx context.Context, id uuid.UUID) (*model.FormSchema, error)

	// Render returns the fillable HTML page for a stored schema.
	Render(ctx context.Context, id uuid.UUID) (string, error)

	// Submit coerces raw form values against the schema and stores them.
	// Keys that do not name a field are dropped.
	Submit(ctx context.Context, id uuid.UUID, raw map[string]string) (uuid.UUID, error)

	// ListResponses returns every stored response for a schema.
	ListResponses(ctx context.Context, id uuid.UUID) ([]model.FormResponse, error)

	// Export uploads all responses as one JSON object and returns a presigned URL for it.
	Export(ctx context.Context, id uuid.UUID) (*ExportResult, error)
}

// FormServiceDeps groups the collaborators of the form service.
// Cache, Store and Logger are optional.
type FormServiceDeps struct {
	Schemas      repository.FormSchemaRepository
	Responses    repository.FormResponseRepository
	Renderer     Renderer
	Cache        cache.SchemaCache
	Store        storage.Storage
	Logger       *zap.Logger
	ExportURLTTL time.Duration
}

type formService struct {
	schemas   repository.FormSchemaRepository
	responses repository.FormResponseRepository
	renderer  Renderer
	cache     cache.SchemaCache
	store     storage.Storage
	log       *zap.Logger
	exportTTL time.Duration
	now       func() time.Time
}

// NewFormService constructs a FormService.
func NewFormService(d FormServiceDeps) FormService {
	s := &formService{
		schemas:   d.Schemas,
		responses: d.Responses,
		renderer:  d.Renderer,
		cache:     d.Cache,
		store:     d.Store,
		log:       d.Logger,
		exportTTL: d.ExportURLTTL,
		now:       func() time.Time { return time.Now().UTC() },
	}
	if s.cache == nil {
		s.cache = cache.Noop{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.exportTTL <= 0 {
		s.exportTTL = DefaultExportURLTTL
	}
	return s
}

func (s *formService) Register(ctx context.Context, schema *model.FormSchema) (uuid.UUID, error) {
	if schema == nil {
		return uuid.Nil, apperr.BadRequest("form schema is required")
	}
	id, err := s.schemas.Create(ctx, schema)
	if err != nil {
		return uuid.Nil, err
	}
	s.log.Info("form schema registered",
		zap.String("form_id", id.String()),
		zap.Int("fields", len(schema.Fields)),
	)
	return id, nil
}

func (s *formService) Get(ctx context.Context, id uuid.UUID) (*model.FormSchema, error) {
	cached, err := s.cache.Get(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("schema cache read failed", zap.String("form_id", id.String()), zap.Error(err))
	}

	schema, err := s.schemas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, schema); err != nil {
		s.log.Warn("schema cache write failed", zap.String("form_id", id.String()), zap.Error(err))
	}
	return schema, nil
}

func (s *formService) Render(ctx context.Context, id uuid.UUID) (string, error) {
	schema, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	html, err := s.renderer.Render(schema)
	if err != nil {
		return "", apperr.Internal(err, "failed to render form %s", id)
	}
	return html, nil
}

func (s *formService) Submit(ctx context.Context, id uuid.UUID, raw map[string]string) (uuid.UUID, error) {
	schema, err := s.Get(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}

	data := Coerce(schema, raw)
	if dropped := len(raw) - len(data); dropped > 0 {
		s.log.Debug("unknown submission keys dropped",
			zap.String("form_id", id.String()),
			zap.Int("dropped", dropped),
		)
	}

	return s.responses.Create(ctx, &model.FormResponse{FormID: id, Data: data})
}

func (s *formService) ListResponses(ctx context.Context, id uuid.UUID) ([]model.FormResponse, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.responses.ListByFormID(ctx, id)
}

func (s *formService) Export(ctx context.Context, id uuid.UUID) (*ExportResult, error) {
	if s.store == nil {
		return nil, apperr.Storage(nil, "export storage is not configured")
	}
	schema, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	responses, err := s.responses.ListByFormID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	body, err := json.Marshal(exportDocument{
		FormID:     id,
		FormName:   schema.Name,
		ExportedAt: now,
		Count:      len(responses),
		Responses:  responses,
	})
	if err != nil {
		return nil, apperr.Internal(err, "failed to serialize export")
	}

	key := path.Join("exports", id.String(), strconv.FormatInt(now.UnixNano(), 10)+".json")
	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata:    map[string]string{"form-id": id.String()},
	})
	if err != nil {
		return nil, apperr.Storage(err, "failed to upload export")
	}

	url, err := s.store.PresignGet(ctx, info.Key, s.exportTTL)
	if err != nil {
		// Rollback: an export nobody can download is just clutter.
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			s.log.Error("export rollback failed", zap.String("key", info.Key), zap.Error(delErr))
		}
		return nil, apperr.Storage(fmt.Errorf("presign: %w", err), "failed to sign export URL")
	}

	s.log.Info("form responses exported",
		zap.String("form_id", id.String()),
		zap.String("key", info.Key),
		zap.Int("count", len(responses)),
	)
	return &ExportResult{Key: info.Key, URL: url, Count: len(responses)}, nil
}

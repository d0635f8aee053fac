package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"formportal/internal/model"
	"formportal/internal/service"
)

type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) Register(ctx context.Context, schema *model.FormSchema) (uuid.UUID, error) {
	args := m.Called(ctx, schema)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockFormService) Get(ctx context.Context, id uuid.UUID) (*model.FormSchema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormSchema), args.Error(1)
}

func (m *MockFormService) Render(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockFormService) Submit(ctx context.Context, id uuid.UUID, raw map[string]string) (uuid.UUID, error) {
	args := m.Called(ctx, id, raw)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockFormService) ListResponses(ctx context.Context, id uuid.UUID) ([]model.FormResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FormResponse), args.Error(1)
}

func (m *MockFormService) Export(ctx context.Context, id uuid.UUID) (*service.ExportResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"formportal/internal/model"
)

type MockFormSchemaRepository struct {
	mock.Mock
}

func (m *MockFormSchemaRepository) Create(ctx context.Context, schema *model.FormSchema) (uuid.UUID, error) {
	args := m.Called(ctx, schema)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockFormSchemaRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FormSchema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormSchema), args.Error(1)
}

type MockFormResponseRepository struct {
	mock.Mock
}

func (m *MockFormResponseRepository) Create(ctx context.Context, resp *model.FormResponse) (uuid.UUID, error) {
	args := m.Called(ctx, resp)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockFormResponseRepository) ListByFormID(ctx context.Context, formID uuid.UUID) ([]model.FormResponse, error) {
	args := m.Called(ctx, formID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FormResponse), args.Error(1)
}

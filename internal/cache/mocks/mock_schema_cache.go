package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"formportal/internal/model"
)

type MockSchemaCache struct {
	mock.Mock
}

func (m *MockSchemaCache) Get(ctx context.Context, id uuid.UUID) (*model.FormSchema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormSchema), args.Error(1)
}

func (m *MockSchemaCache) Set(ctx context.Context, schema *model.FormSchema) error {
	args := m.Called(ctx, schema)
	return args.Error(0)
}

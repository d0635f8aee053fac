package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formportal/internal/config"
	"formportal/internal/model"
)

func sampleSchema() *model.FormSchema {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &model.FormSchema{
		ID:   uuid.New(),
		Name: "Contact",
		Fields: []model.FormField{
			{ID: "email", Label: "Email", FieldType: model.FieldEmail, Required: true},
			{ID: "topic", Label: "Topic", FieldType: model.FieldSelect, Options: []model.FieldOption{{Value: "a", Label: "A"}}},
		},
		CreatedAt: &created,
		UpdatedAt: &created,
	}
}

func TestRedisSchemaCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(config.RedisConfig{Address: mr.Addr()})
	c := NewRedisSchemaCache(client, time.Minute)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	s := sampleSchema()

	_, err := c.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, s))
	assert.Equal(t, time.Minute, mr.TTL(Key(s.ID)))

	got, err := c.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	mr.FastForward(2 * time.Minute)
	_, err = c.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisSchemaCache_CorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewRedisSchemaCache(NewRedisClient(config.RedisConfig{Address: mr.Addr()}), 0)
	id := uuid.New()

	require.NoError(t, mr.Set(Key(id), "{broken"))

	_, err := c.Get(context.Background(), id)
	assert.ErrorContains(t, err, "decode cached schema")
}

func TestRedisSchemaCache_Errors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := &RedisSchemaCache{client: client, ttl: 5 * time.Minute}
	ctx := context.Background()
	s := sampleSchema()

	mock.ExpectGet(Key(s.ID)).SetErr(errors.New("connection refused"))
	_, err := c.Get(ctx, s.ID)
	assert.ErrorContains(t, err, "redis get: connection refused")

	raw, _ := json.Marshal(s)
	mock.ExpectSet(Key(s.ID), raw, 5*time.Minute).SetErr(errors.New("READONLY"))
	err = c.Set(ctx, s)
	assert.ErrorContains(t, err, "redis set: READONLY")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoop(t *testing.T) {
	var c SchemaCache = Noop{}
	_, err := c.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, c.Set(context.Background(), sampleSchema()))
}

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldType_UnmarshalJSON(t *testing.T) {
	var f FormField
	err := json.Unmarshal([]byte(`{"id":"email","label":"Email","field_type":"Email","required":true}`), &f)
	require.NoError(t, err)
	assert.Equal(t, FieldEmail, f.FieldType)
	assert.True(t, f.Required)
	assert.Nil(t, f.Placeholder)

	err = json.Unmarshal([]byte(`{"id":"x","label":"X","field_type":"Slider"}`), &f)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field type "Slider"`)
}

func TestFormSchema_Field(t *testing.T) {
	s := FormSchema{Fields: []FormField{
		{ID: "a", FieldType: FieldText},
		{ID: "b", FieldType: FieldNumber},
	}}

	f, ok := s.Field("b")
	assert.True(t, ok)
	assert.Equal(t, FieldNumber, f.FieldType)

	_, ok = s.Field("c")
	assert.False(t, ok)
}

func TestEnvelope(t *testing.T) {
	b, err := json.Marshal(Success(CreatedResult{ID: "1", Message: "ok"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"id":"1","message":"ok"},"error":null}`, string(b))

	b, err = json.Marshal(Failure("Not found: x"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"data":null,"error":"Not found: x"}`, string(b))
}

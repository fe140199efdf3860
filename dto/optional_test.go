package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academic-events/internal/models"
)

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	var req EventUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Feria","organizacion":null}`), &req))

	assert.True(t, req.Name.Present())
	assert.Equal(t, "Feria", req.Name.Value)

	assert.True(t, req.Organizations.Set)
	assert.True(t, req.Organizations.Null)
	assert.False(t, req.Organizations.Present())

	assert.False(t, req.Capacity.Set)
	assert.False(t, req.Status.Set)
}

func TestOptionalEnumValue(t *testing.T) {
	var req EventUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"estado":"enRevision","capacidad":0}`), &req))

	assert.Equal(t, models.EventInReview, req.Status.Value)
	assert.True(t, req.Capacity.Present())
	assert.Zero(t, req.Capacity.Value)
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var req EventUpdateRequest
	require.Error(t, json.Unmarshal([]byte(`{"capacidad":"many"}`), &req))
}

func TestNewUserResponseHidesHashes(t *testing.T) {
	u := models.User{
		ID:        7,
		Name:      "Ana",
		Passwords: []models.Password{{Hash: "$2a$10$secret", Status: models.PasswordActive}},
	}

	body, err := json.Marshal(NewUserResponse(u))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secret")
	assert.NotContains(t, string(body), "clave")
	assert.Contains(t, string(body), `"estado":"activa"`)
}

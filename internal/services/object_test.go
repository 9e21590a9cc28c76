package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/sui-wallet/internal/models"
)

func TestObjectFetch(t *testing.T) {
	backend := &fakeBackend{object: &models.ObjectFields{Admin: "0x1", ID: "0x2", Balance: "300"}}
	s := NewObjectLookupService(backend, "0x2")

	assert.Equal(t, "0x2", s.ObjectID())
	result := s.Fetch(context.Background())
	require.NotNil(t, result.Fields)
	assert.Equal(t, "0x1", result.Fields.Admin)
	assert.Nil(t, result.Error)
}

func TestObjectFetchFailures(t *testing.T) {
	backend := &fakeBackend{apiErr: &models.APIError{Error: "object not found"}}
	s := NewObjectLookupService(backend, "0x2")

	result := s.Fetch(context.Background())
	require.NotNil(t, result.Error)
	assert.Equal(t, "object not found", result.Error.Error)

	backend.apiErr = nil
	backend.err = errors.New("dial tcp: timeout")
	result = s.Fetch(context.Background())
	require.NotNil(t, result.Error)
	assert.Equal(t, QueryFailed, result.Error.Error)
	assert.Nil(t, result.Fields)
}

package services

import (
	"context"

	"github.com/kelsos/sui-wallet/internal/logger"
	"github.com/kelsos/sui-wallet/internal/models"
)

// ObjectBackend is the backend used for object lookups
type ObjectBackend interface {
	GetObject(ctx context.Context) (*models.ObjectFields, *models.APIError, error)
}

// ObjectResult is what the object panel displays
type ObjectResult struct {
	Fields *models.ObjectFields
	Error  *models.APIError
}

// ObjectLookupService fetches the fields of a fixed object
type ObjectLookupService struct {
	backend  ObjectBackend
	objectID string
}

func NewObjectLookupService(backend ObjectBackend, objectID string) *ObjectLookupService {
	return &ObjectLookupService{backend: backend, objectID: objectID}
}

func (s *ObjectLookupService) ObjectID() string {
	return s.objectID
}

// Fetch queries the object. Transport failures are reported with a generic
// message and the cause is only logged.
func (s *ObjectLookupService) Fetch(ctx context.Context) ObjectResult {
	fields, apiErr, err := s.backend.GetObject(ctx)
	switch {
	case err != nil:
		logger.Error("Object %s lookup failed: %v", s.objectID, err)
		return ObjectResult{Error: &models.APIError{Error: QueryFailed}}
	case apiErr != nil:
		return ObjectResult{Error: apiErr}
	default:
		return ObjectResult{Fields: fields}
	}
}

package aitranslate

import (
	"context"

	"github.com/heartmarshall/ordbog-backend/internal/provider"
)

// Stub is a no-op translation client for offline runs.
// Returns nil (no translation available).
type Stub struct{}

// NewStub creates a new no-op translation client.
func NewStub() *Stub { return &Stub{} }

// FetchTranslation always returns nil: no translations offline.
func (s *Stub) FetchTranslation(ctx context.Context, req provider.TranslationRequest) (*provider.TranslatedWordPayload, error) {
	return nil, nil
}

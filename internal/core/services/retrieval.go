package services

import (
	"context"

	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/core/ports/driving"
)

// Ensure both retrieval variants implement the interface.
var (
	_ driving.MessageRetrievalService = (*ExtractingRetrievalService)(nil)
	_ driving.MessageRetrievalService = (*PassthroughRetrievalService)(nil)
)

// ExtractingRetrievalService reads raw content and decodes it through a
// reader registry. Used for sources whose content needs interpretation.
type ExtractingRetrievalService struct {
	source   driven.ContentSource
	registry driven.ReaderRegistry
}

// NewExtractingRetrievalService creates a retrieval service that decodes
// content from source using registry.
func NewExtractingRetrievalService(source driven.ContentSource, registry driven.ReaderRegistry) *ExtractingRetrievalService {
	return &ExtractingRetrievalService{
		source:   source,
		registry: registry,
	}
}

// GetMessageBody fetches the content once and resolves it to a body.
// A fetch failure is returned without consulting the registry.
func (s *ExtractingRetrievalService) GetMessageBody(ctx context.Context) (string, error) {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return "", err
	}
	return s.registry.Resolve(raw), nil
}

// PassthroughRetrievalService returns content from sources that already
// hold a finished body, such as the log database.
type PassthroughRetrievalService struct {
	source driven.ContentSource
}

// NewPassthroughRetrievalService creates a retrieval service for
// pre-extracted sources.
func NewPassthroughRetrievalService(source driven.ContentSource) *PassthroughRetrievalService {
	return &PassthroughRetrievalService{source: source}
}

// GetMessageBody fetches the content once and returns it unchanged.
func (s *PassthroughRetrievalService) GetMessageBody(ctx context.Context) (string, error) {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return "", err
	}
	return raw.String(), nil
}

package ports

import (
	"context"

	"datacat/internal/domain"
)

// DatasetSource retrieves and decodes a dataset document.
type DatasetSource interface {
	// Fetch performs one unconditional retrieval of the named dataset.
	// Implementations do not retry.
	Fetch(ctx context.Context, name domain.DatasetName) (*domain.Document, error)

	// Location describes where the named dataset is read from, for messages.
	Location(name domain.DatasetName) string
}

package application

import (
	"errors"
	"fmt"

	"datacat/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrNotFound           = errors.New("not found")
	ErrUnknownDataset     = domain.ErrUnknownDataset
)

// FetchError represents a failed dataset retrieval
type FetchError struct {
	Dataset domain.DatasetName
	Err     error
}

func (e *FetchError) Error() string {
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// RecordNotFoundError reports an id missing from the active dataset
type RecordNotFoundError struct {
	Dataset domain.DatasetName
	ID      string
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("record %s not found in %s dataset", e.ID, e.Dataset)
}

func (e *RecordNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

package ports

import (
	"context"
	"io"

	"github.com/laborercms/laborer-api/internal/core/domain"
)

// PictureUpload is an uploaded image as received by the transport layer.
type PictureUpload struct {
	Content  io.Reader
	Filename string
}

// CreateLaborerInput carries all data needed to create a laborer record.
// HireDate is the raw string from the form; the service parses it.
type CreateLaborerInput struct {
	FirstName string
	LastName  string
	Email     string
	HireDate  string
	Role      string
	Picture   *PictureUpload // optional
}

// UpdateLaborerInput carries a partial update. Empty strings mean the field
// was not supplied and the stored value is kept.
type UpdateLaborerInput struct {
	FirstName string
	LastName  string
	Email     string
	HireDate  string
	Role      string
	Picture   *PictureUpload // optional; replaces and cleans up the old file
}

// LaborerService defines the use-case operations over laborer records.
type LaborerService interface {
	ListLaborers(ctx context.Context) ([]domain.LaborerSummary, error)
	GetLaborer(ctx context.Context, id string) (*domain.Laborer, error)
	CreateLaborer(ctx context.Context, input CreateLaborerInput) (*domain.Laborer, error)
	// UpdateLaborer applies a partial update. Concurrent updates to the same
	// id are last-write-wins; the service does not lock records.
	UpdateLaborer(ctx context.Context, id string, input UpdateLaborerInput) (*domain.Laborer, error)
}

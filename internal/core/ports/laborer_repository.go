package ports

import (
	"context"
	"time"

	"github.com/laborercms/laborer-api/internal/core/domain"
)

// UpdateFields carries the subset of laborer fields an update wants to change.
// Nil pointers mean "leave the stored value alone"; the repository merges only
// what is set.
type UpdateFields struct {
	FirstName *string
	LastName  *string
	Email     *string
	HireDate  *time.Time
	Role      *domain.Role
	Picture   *string
	UpdatedAt time.Time
}

// LaborerRepository defines persistence operations for laborer records.
// Implementations must make the unique-email check atomic with respect to
// concurrent writes (e.g. via a unique index).
type LaborerRepository interface {
	// List returns all records projected to the summary fields, sorted by
	// last name then first name. The projection never includes the picture.
	List(ctx context.Context) ([]domain.LaborerSummary, error)
	FindByID(ctx context.Context, id string) (*domain.Laborer, error)
	// Create inserts a new record. Returns domain.ErrDuplicateEmail when the
	// email is already taken by any record.
	Create(ctx context.Context, l *domain.Laborer) error
	// Update merges the set fields into the record identified by id and
	// returns the updated record. Returns domain.ErrLaborerNotFound for an
	// unknown id and domain.ErrDuplicateEmail when the new email collides
	// with a different record.
	Update(ctx context.Context, id string, fields UpdateFields) (*domain.Laborer, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/laborercms/laborer-api/internal/core/domain"
	"github.com/laborercms/laborer-api/internal/core/ports"
)

type LaborerService struct {
	repo     ports.LaborerRepository
	pictures ports.PictureStore
	cleanup  ports.CleanupQueue
	logger   zerolog.Logger
}

func NewLaborerService(repo ports.LaborerRepository, pictures ports.PictureStore, cleanup ports.CleanupQueue, logger zerolog.Logger) *LaborerService {
	return &LaborerService{repo: repo, pictures: pictures, cleanup: cleanup, logger: logger}
}

// ListLaborers returns the summary projection of every record.
func (s *LaborerService) ListLaborers(ctx context.Context) ([]domain.LaborerSummary, error) {
	return s.repo.List(ctx)
}

// GetLaborer returns the full record for id.
func (s *LaborerService) GetLaborer(ctx context.Context, id string) (*domain.Laborer, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateLaborer validates the input, stores the optional picture, and
// persists a new record with a freshly generated id. When the insert fails
// the stored picture is discarded so no orphan file is left behind.
func (s *LaborerService) CreateLaborer(ctx context.Context, input ports.CreateLaborerInput) (*domain.Laborer, error) {
	role := domain.Role(input.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, input.Role)
	}

	hireDate, err := parseHireDate(input.HireDate)
	if err != nil {
		return nil, err
	}

	picturePath := ""
	if input.Picture != nil {
		picturePath, err = s.pictures.Store(ctx, input.Picture.Content, input.Picture.Filename)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to store picture")
			return nil, err
		}
	}

	now := time.Now().UTC()
	laborer := &domain.Laborer{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		HireDate:  hireDate,
		Role:      role,
		Picture:   picturePath,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, laborer); err != nil {
		if picturePath != "" {
			s.discardPicture(ctx, picturePath)
		}
		return nil, err
	}

	s.logger.Info().Str("laborer_id", laborer.ID).Str("email", laborer.Email).Str("role", string(role)).Msg("laborer created")
	return laborer, nil
}

// UpdateLaborer applies a partial update to an existing record. When a new
// picture is supplied the previous managed file is deleted best-effort after
// the record has been updated; a failed deletion never fails the request.
//
// Concurrent updates to the same id are last-write-wins; no record locking
// is performed.
func (s *LaborerService) UpdateLaborer(ctx context.Context, id string, input ports.UpdateLaborerInput) (*domain.Laborer, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := ports.UpdateFields{UpdatedAt: time.Now().UTC()}

	if input.FirstName != "" {
		fields.FirstName = &input.FirstName
	}
	if input.LastName != "" {
		fields.LastName = &input.LastName
	}
	if input.Email != "" {
		fields.Email = &input.Email
	}
	if input.Role != "" {
		role := domain.Role(input.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, input.Role)
		}
		fields.Role = &role
	}
	if input.HireDate != "" {
		hireDate, err := parseHireDate(input.HireDate)
		if err != nil {
			return nil, err
		}
		fields.HireDate = &hireDate
	}

	newPicture := ""
	if input.Picture != nil {
		newPicture, err = s.pictures.Store(ctx, input.Picture.Content, input.Picture.Filename)
		if err != nil {
			s.logger.Error().Err(err).Str("laborer_id", id).Msg("failed to store picture")
			return nil, err
		}
		fields.Picture = &newPicture
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if newPicture != "" {
			s.discardPicture(ctx, newPicture)
		}
		return nil, err
	}

	// The old file is only removed once the record points at the new one, and
	// only when it is a managed upload rather than an external URL.
	if newPicture != "" && existing.Picture != "" && existing.Picture != newPicture {
		s.discardPicture(ctx, existing.Picture)
	}

	s.logger.Info().Str("laborer_id", id).Msg("laborer updated")
	return updated, nil
}

// discardPicture deletes a stored picture best-effort. Failures are logged
// and queued for the cleanup janitor; they never propagate to the caller.
func (s *LaborerService) discardPicture(ctx context.Context, path string) {
	if !s.pictures.Managed(path) {
		return
	}
	if err := s.pictures.Delete(ctx, path); err != nil {
		s.logger.Warn().Err(err).Str("picture", path).Msg("picture cleanup failed, queueing retry")
		if qErr := s.cleanup.Push(ctx, path); qErr != nil {
			s.logger.Error().Err(qErr).Str("picture", path).Msg("failed to queue picture cleanup")
		}
	}
}

// parseHireDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseHireDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidHireDate, raw)
}

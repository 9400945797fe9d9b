package handler

import (
	"github.com/laborercms/laborer-api/internal/core/domain"
	"github.com/laborercms/laborer-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createLaborerRequest, picture *ports.PictureUpload) ports.CreateLaborerInput {
	return ports.CreateLaborerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		HireDate:  req.HireDate,
		Role:      req.Role,
		Picture:   picture,
	}
}

func toUpdateInput(req updateLaborerRequest, picture *ports.PictureUpload) ports.UpdateLaborerInput {
	return ports.UpdateLaborerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		HireDate:  req.HireDate,
		Role:      req.Role,
		Picture:   picture,
	}
}

// --- Domain → HTTP response ---

func toLaborerResponse(l *domain.Laborer) laborerResponse {
	return laborerResponse{
		ID:        l.ID,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Email:     l.Email,
		HireDate:  l.HireDate.UTC(),
		Role:      string(l.Role),
		Picture:   l.Picture,
		CreatedAt: l.CreatedAt.UTC(),
		UpdatedAt: l.UpdatedAt.UTC(),
	}
}

func toListResponse(summaries []domain.LaborerSummary) []laborerSummaryResponse {
	out := make([]laborerSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = laborerSummaryResponse{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			HireDate:  s.HireDate.UTC(),
			Email:     s.Email,
			Role:      string(s.Role),
		}
	}
	return out
}

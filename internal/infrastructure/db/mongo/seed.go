package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/laborercms/laborer-api/internal/core/domain"
)

// SeedDemo inserts a handful of demo laborers when the collection is empty.
// It is an opt-in fixture for local development and end-to-end tests; it
// never wipes existing data and is a no-op on a populated collection.
func SeedDemo(ctx context.Context, repo *LaborerRepository) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := repo.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	demo := []demoLaborer{
		{"Jane", "Smith", "jane.smith@laborer.com", "2023-02-20", domain.RoleAdmin},
		{"Carlos", "Mendoza", "carlos.mendoza@laborer.com", "2021-07-05", domain.RoleSupervisor},
		{"Aisha", "Okafor", "aisha.okafor@laborer.com", "2022-11-14", domain.RoleUser},
		{"Tom", "Becker", "tom.becker@laborer.com", "2024-01-08", domain.RoleUser},
	}

	for _, d := range demo {
		hireDate, err := time.Parse("2006-01-02", d.hireDate)
		if err != nil {
			return err
		}
		l := &domain.Laborer{
			ID:        uuid.NewString(),
			FirstName: d.firstName,
			LastName:  d.lastName,
			Email:     d.email,
			HireDate:  hireDate.UTC(),
			Role:      d.role,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

type demoLaborer struct {
	firstName string
	lastName  string
	email     string
	hireDate  string
	role      domain.Role
}

package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/laborercms/laborer-api/internal/core/domain"
	"github.com/laborercms/laborer-api/internal/core/ports"
)

const collectionLaborers = "laborers"

// summaryProjection limits list queries to the summary fields. The picture
// field must never reach the list response.
var summaryProjection = bson.M{
	"_id":        1,
	"first_name": 1,
	"last_name":  1,
	"hire_date":  1,
	"email":      1,
	"role":       1,
}

type LaborerRepository struct {
	col *mongo.Collection
}

func NewLaborerRepository(db *mongo.Database) *LaborerRepository {
	return &LaborerRepository{col: db.Collection(collectionLaborers)}
}

// List returns all records projected to the summary fields, sorted by last
// name then first name.
func (r *LaborerRepository) List(ctx context.Context) ([]domain.LaborerSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(summaryProjection).
		SetSort(bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []domain.LaborerSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// FindByID retrieves the full record for id.
func (r *LaborerRepository) FindByID(ctx context.Context, id string) (*domain.Laborer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.Laborer
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLaborerNotFound
		}
		return nil, err
	}
	return &l, nil
}

// Create inserts a new laborer document. The unique index on email makes the
// check-and-insert atomic; a duplicate key maps to domain.ErrDuplicateEmail.
func (r *LaborerRepository) Create(ctx context.Context, l *domain.Laborer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, l)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Update merges the set fields into the record and returns the updated
// document. An email collision with a different record surfaces as
// domain.ErrDuplicateEmail via the unique index.
func (r *LaborerRepository) Update(ctx context.Context, id string, fields ports.UpdateFields) (*domain.Laborer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": fields.UpdatedAt}
	if fields.FirstName != nil {
		set["first_name"] = *fields.FirstName
	}
	if fields.LastName != nil {
		set["last_name"] = *fields.LastName
	}
	if fields.Email != nil {
		set["email"] = *fields.Email
	}
	if fields.HireDate != nil {
		set["hire_date"] = *fields.HireDate
	}
	if fields.Role != nil {
		set["role"] = *fields.Role
	}
	if fields.Picture != nil {
		set["picture"] = *fields.Picture
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Laborer
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLaborerNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return &updated, nil
}

// EnsureIndexes creates the unique email index the uniqueness invariant
// depends on. Must run before the service accepts writes.
func (r *LaborerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

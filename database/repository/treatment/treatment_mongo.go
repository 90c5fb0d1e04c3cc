package treatmentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTreatmentRepo implements TreatmentRepository using MongoDB.
type MongoTreatmentRepo struct {
	coll *mongo.Collection
}

// NewMongoTreatmentRepo creates a new instance of TreatmentRepository using MongoDB.
func NewMongoTreatmentRepo(db *mongo.Database) TreatmentRepository {
	coll := db.Collection("appointmentOptions")
	repo := &MongoTreatmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTreatmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAllWithProjection retrieves all treatment options with an optional projection.
// Pass nil for projection to retrieve full documents.
func (r *MongoTreatmentRepo) GetAllWithProjection(projection bson.M) ([]models.TreatmentOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve treatment options: %w", err)
	}
	defer cursor.Close(ctx)

	var treatments []models.TreatmentOption
	for cursor.Next(ctx) {
		var t models.TreatmentOption
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode treatment option: %w", err)
		}
		treatments = append(treatments, t)
	}
	return treatments, nil
}

// GetAll retrieves the full catalog (full documents).
func (r *MongoTreatmentRepo) GetAll() ([]models.TreatmentOption, error) {
	return r.GetAllWithProjection(nil)
}

// GetByName retrieves a treatment option by its unique name.
func (r *MongoTreatmentRepo) GetByName(name string) (*models.TreatmentOption, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.TreatmentOption
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch treatment option %q: %w", name, err)
	}
	return &t, nil
}

// GetNames retrieves the name-only projection of the catalog.
func (r *MongoTreatmentRepo) GetNames() ([]models.Specialty, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	for cursor.Next(ctx) {
		var s models.Specialty
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode specialty: %w", err)
		}
		specialties = append(specialties, s)
	}
	return specialties, nil
}

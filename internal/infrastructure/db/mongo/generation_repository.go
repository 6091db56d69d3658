package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

const collectionGenerations = "generations"

type GenerationRepository struct {
	col *mongo.Collection
}

func NewGenerationRepository(db *mongo.Database) *GenerationRepository {
	return &GenerationRepository{col: db.Collection(collectionGenerations)}
}

func (r *GenerationRepository) Create(ctx context.Context, generation *domain.Generation) (*domain.Generation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *generation
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *GenerationRepository) FindByID(ctx context.Context, id string) (*domain.Generation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var generation domain.Generation
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&generation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewError(domain.KindNotFound, "generation %q not found", id)
		}
		return nil, err
	}
	return &generation, nil
}

func (r *GenerationRepository) ListByModel(ctx context.Context, modelID string, page ports.Page) ([]domain.Generation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if modelID != "" {
		filter["model_id"] = modelID
	}

	cursor, err := r.col.Find(ctx, filter, clampPage(page))
	if err != nil {
		return nil, err
	}
	var generations []domain.Generation
	if err := cursor.All(ctx, &generations); err != nil {
		return nil, err
	}
	return generations, nil
}

// EnsureIndexes creates the model lookup index.
func (r *GenerationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "model_id", Value: 1}},
	})
	return err
}

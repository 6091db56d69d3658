package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

const collectionEngines = "engines"

type EngineRepository struct {
	col *mongo.Collection
}

func NewEngineRepository(db *mongo.Database) *EngineRepository {
	return &EngineRepository{col: db.Collection(collectionEngines)}
}

func (r *EngineRepository) Create(ctx context.Context, engine *domain.Engine) (*domain.Engine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *engine
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *EngineRepository) ListByGeneration(ctx context.Context, generationID string, page ports.Page) ([]domain.Engine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if generationID != "" {
		filter["generation_id"] = generationID
	}

	cursor, err := r.col.Find(ctx, filter, clampPage(page))
	if err != nil {
		return nil, err
	}
	var engines []domain.Engine
	if err := cursor.All(ctx, &engines); err != nil {
		return nil, err
	}
	return engines, nil
}

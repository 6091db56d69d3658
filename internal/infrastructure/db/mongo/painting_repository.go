package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

const collectionPaintings = "paintings"

type PaintingRepository struct {
	col *mongo.Collection
}

func NewPaintingRepository(db *mongo.Database) *PaintingRepository {
	return &PaintingRepository{col: db.Collection(collectionPaintings)}
}

func (r *PaintingRepository) Create(ctx context.Context, painting *domain.Painting) (*domain.Painting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *painting
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PaintingRepository) ListByGeneration(ctx context.Context, generationID string, page ports.Page) ([]domain.Painting, error) {
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
	var paintings []domain.Painting
	if err := cursor.All(ctx, &paintings); err != nil {
		return nil, err
	}
	return paintings, nil
}

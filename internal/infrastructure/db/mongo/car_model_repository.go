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

const collectionCarModels = "car_models"

type CarModelRepository struct {
	col *mongo.Collection
}

func NewCarModelRepository(db *mongo.Database) *CarModelRepository {
	return &CarModelRepository{col: db.Collection(collectionCarModels)}
}

func (r *CarModelRepository) Create(ctx context.Context, model *domain.CarModel) (*domain.CarModel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *model
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CarModelRepository) FindByID(ctx context.Context, id string) (*domain.CarModel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var model domain.CarModel
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewError(domain.KindNotFound, "car model %q not found", id)
		}
		return nil, err
	}
	return &model, nil
}

// ListByBrand lists models, filtered by brand when brandID is non-empty.
func (r *CarModelRepository) ListByBrand(ctx context.Context, brandID string, page ports.Page) ([]domain.CarModel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if brandID != "" {
		filter["brand_id"] = brandID
	}

	cursor, err := r.col.Find(ctx, filter, clampPage(page))
	if err != nil {
		return nil, err
	}
	var models []domain.CarModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// EnsureIndexes creates the brand lookup index.
func (r *CarModelRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "brand_id", Value: 1}},
	})
	return err
}

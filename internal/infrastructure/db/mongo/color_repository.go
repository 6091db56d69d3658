package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

const collectionColors = "colors"

type ColorRepository struct {
	col *mongo.Collection
}

func NewColorRepository(db *mongo.Database) *ColorRepository {
	return &ColorRepository{col: db.Collection(collectionColors)}
}

func (r *ColorRepository) Create(ctx context.Context, color *domain.Color) (*domain.Color, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *color
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.NewError(domain.KindDuplicateEntry, "duplicate entry %q", color.Name)
		}
		return nil, err
	}
	return &created, nil
}

func (r *ColorRepository) FindByID(ctx context.Context, id string) (*domain.Color, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var color domain.Color
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&color); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewError(domain.KindNotFound, "color %q not found", id)
		}
		return nil, err
	}
	return &color, nil
}

func (r *ColorRepository) List(ctx context.Context, page ports.Page) ([]domain.Color, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, clampPage(page))
	if err != nil {
		return nil, err
	}
	var colors []domain.Color
	if err := cursor.All(ctx, &colors); err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *ColorRepository) Update(ctx context.Context, color *domain.Color) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": color.ID}, color)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.NewError(domain.KindDuplicateEntry, "duplicate entry %q", color.Name)
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewError(domain.KindNotFound, "color %q not found", color.ID)
	}
	return nil
}

// EnsureIndexes creates the unique color name index.
func (r *ColorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

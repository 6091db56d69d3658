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

const collectionBrands = "brands"

// maxPageSize caps list queries across all catalog repositories.
const maxPageSize = 100

func clampPage(page ports.Page) *options.FindOptions {
	limit := page.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	return options.Find().SetLimit(int64(limit)).SetSkip(int64(offset)).SetSort(bson.D{{Key: "created_at", Value: 1}})
}

type BrandRepository struct {
	col *mongo.Collection
}

func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{col: db.Collection(collectionBrands)}
}

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *brand
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.NewError(domain.KindDuplicateEntry, "duplicate entry %q", brand.Name)
		}
		return nil, err
	}
	return &created, nil
}

func (r *BrandRepository) FindByID(ctx context.Context, id string) (*domain.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var brand domain.Brand
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&brand); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewError(domain.KindNotFound, "brand %q not found", id)
		}
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepository) List(ctx context.Context, page ports.Page) ([]domain.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, clampPage(page))
	if err != nil {
		return nil, err
	}
	var brands []domain.Brand
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": brand.ID}, brand)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.NewError(domain.KindDuplicateEntry, "duplicate entry %q", brand.Name)
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewError(domain.KindNotFound, "brand %q not found", brand.ID)
	}
	return nil
}

func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NewError(domain.KindNotFound, "brand %q not found", id)
	}
	return nil
}

// EnsureIndexes creates the unique brand name index.
func (r *BrandRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

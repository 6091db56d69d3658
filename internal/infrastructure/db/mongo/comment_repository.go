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

const collectionComments = "comments"

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(collectionComments)}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *comment
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var comment domain.Comment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewError(domain.KindNotFound, "comment %q not found", id)
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) ListByModel(ctx context.Context, modelID string, page ports.Page) ([]domain.Comment, error) {
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
	var comments []domain.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NewError(domain.KindNotFound, "comment %q not found", id)
	}
	return nil
}

// EnsureIndexes creates the model lookup index.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "model_id", Value: 1}},
	})
	return err
}

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
)

const collectionConfirmations = "registration_confirmations"

type ConfirmationRepository struct {
	col *mongo.Collection
}

func NewConfirmationRepository(db *mongo.Database) *ConfirmationRepository {
	return &ConfirmationRepository{col: db.Collection(collectionConfirmations)}
}

type confirmationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Code        string             `bson:"code"`
	AllowedUpTo time.Time          `bson:"allowed_up_to"`
	ConfirmedAt *time.Time         `bson:"confirmed_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d confirmationDoc) toDomain() *domain.RegistrationConfirmation {
	c := &domain.RegistrationConfirmation{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Code:        d.Code,
		AllowedUpTo: d.AllowedUpTo.UTC(),
		CreatedAt:   d.CreatedAt.UTC(),
	}
	if d.ConfirmedAt != nil {
		at := d.ConfirmedAt.UTC()
		c.ConfirmedAt = &at
	}
	return c
}

func (r *ConfirmationRepository) Create(ctx context.Context, confirmation *domain.RegistrationConfirmation) (*domain.RegistrationConfirmation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := confirmationDoc{
		UserID:      confirmation.UserID,
		Code:        confirmation.Code,
		AllowedUpTo: confirmation.AllowedUpTo,
		CreatedAt:   confirmation.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.NewError(domain.KindDuplicateEntry, "duplicate entry %q", confirmation.Code)
		}
		return nil, err
	}

	created := *confirmation
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ConfirmationRepository) FindByCode(ctx context.Context, code string) (*domain.RegistrationConfirmation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc confirmationDoc
	if err := r.col.FindOne(ctx, bson.M{"code": code}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewError(domain.KindNotFound, "registration confirmation not found")
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ConfirmationRepository) FindByUserID(ctx context.Context, userID string) (*domain.RegistrationConfirmation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc confirmationDoc
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewError(domain.KindNotFound, "registration confirmation not found")
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Confirm stamps confirmed_at on an unconfirmed confirmation.
func (r *ConfirmationRepository) Confirm(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.NewError(domain.KindNotFound, "registration confirmation not found")
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "confirmed_at": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"confirmed_at": at}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewError(domain.KindAlreadyConfirmed, "registration is already confirmed")
	}
	return nil
}

// DeleteExpired removes every confirmation whose deadline is strictly before
// the given instant, confirmed or not.
func (r *ConfirmationRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"allowed_up_to": bson.M{"$lt": before}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the unique code index and the deadline index used by
// the cleanup job.
func (r *ConfirmationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "allowed_up_to", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

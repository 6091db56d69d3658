package ports

import (
	"context"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
)

// Page bounds list queries. Limit is capped by the repository implementation.
type Page struct {
	Limit  int
	Offset int
}

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	FindByID(ctx context.Context, id string) (*domain.Brand, error)
	List(ctx context.Context, page Page) ([]domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id string) error
}

type CarModelRepository interface {
	Create(ctx context.Context, model *domain.CarModel) (*domain.CarModel, error)
	FindByID(ctx context.Context, id string) (*domain.CarModel, error)
	ListByBrand(ctx context.Context, brandID string, page Page) ([]domain.CarModel, error)
}

type GenerationRepository interface {
	Create(ctx context.Context, generation *domain.Generation) (*domain.Generation, error)
	FindByID(ctx context.Context, id string) (*domain.Generation, error)
	ListByModel(ctx context.Context, modelID string, page Page) ([]domain.Generation, error)
}

type EngineRepository interface {
	Create(ctx context.Context, engine *domain.Engine) (*domain.Engine, error)
	ListByGeneration(ctx context.Context, generationID string, page Page) ([]domain.Engine, error)
}

type ColorRepository interface {
	Create(ctx context.Context, color *domain.Color) (*domain.Color, error)
	FindByID(ctx context.Context, id string) (*domain.Color, error)
	List(ctx context.Context, page Page) ([]domain.Color, error)
	Update(ctx context.Context, color *domain.Color) error
}

type PaintingRepository interface {
	Create(ctx context.Context, painting *domain.Painting) (*domain.Painting, error)
	ListByGeneration(ctx context.Context, generationID string, page Page) ([]domain.Painting, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByModel(ctx context.Context, modelID string, page Page) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

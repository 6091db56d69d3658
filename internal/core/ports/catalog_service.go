package ports

import (
	"context"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
)

type CreateBrandInput struct {
	Name    string
	LogoURL string
}

type UpdateBrandInput struct {
	ID      string
	Name    string
	LogoURL string
}

type CreateCarModelInput struct {
	BrandID     string
	Name        string
	Description string
}

type CreateGenerationInput struct {
	ModelID   string
	Name      string
	StartYear int
	EndYear   int
}

type CreateEngineInput struct {
	GenerationID string
	Name         string
	FuelType     string
	HorsePower   int
	CapacityCcm  int
}

type CreateColorInput struct {
	Name    string
	HexCode string
}

type UpdateColorInput struct {
	ID      string
	Name    string
	HexCode string
}

type CreatePaintingInput struct {
	GenerationID string
	ColorID      string
	Price        float64
}

type CreateCommentInput struct {
	UserID  string
	ModelID string
	Text    string
	Rating  int
}

// CatalogService exposes CRUD over the car-catalog entities. Writes require
// the ADMIN role at the API boundary; comments are written by their authors.
type CatalogService interface {
	CreateBrand(ctx context.Context, input CreateBrandInput) (*domain.Brand, error)
	GetBrand(ctx context.Context, id string) (*domain.Brand, error)
	ListBrands(ctx context.Context, page Page) ([]domain.Brand, error)
	UpdateBrand(ctx context.Context, input UpdateBrandInput) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id string) error

	CreateCarModel(ctx context.Context, input CreateCarModelInput) (*domain.CarModel, error)
	GetCarModel(ctx context.Context, id string) (*domain.CarModel, error)
	ListCarModels(ctx context.Context, brandID string, page Page) ([]domain.CarModel, error)

	CreateGeneration(ctx context.Context, input CreateGenerationInput) (*domain.Generation, error)
	GetGeneration(ctx context.Context, id string) (*domain.Generation, error)
	ListGenerations(ctx context.Context, modelID string, page Page) ([]domain.Generation, error)

	CreateEngine(ctx context.Context, input CreateEngineInput) (*domain.Engine, error)
	ListEngines(ctx context.Context, generationID string, page Page) ([]domain.Engine, error)

	CreateColor(ctx context.Context, input CreateColorInput) (*domain.Color, error)
	ListColors(ctx context.Context, page Page) ([]domain.Color, error)
	UpdateColor(ctx context.Context, input UpdateColorInput) (*domain.Color, error)

	CreatePainting(ctx context.Context, input CreatePaintingInput) (*domain.Painting, error)
	ListPaintings(ctx context.Context, generationID string, page Page) ([]domain.Painting, error)

	CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, modelID string, page Page) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, id string, requester TokenClaims) error
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

// CatalogService implements CRUD over the car-catalog entities. Relation
// targets (brand for a model, generation for an engine, and so on) are
// checked for existence before the child row is created; a missing target is
// a NotFoundError.
type CatalogService struct {
	brands      ports.BrandRepository
	models      ports.CarModelRepository
	generations ports.GenerationRepository
	engines     ports.EngineRepository
	colors      ports.ColorRepository
	paintings   ports.PaintingRepository
	comments    ports.CommentRepository
	logger      zerolog.Logger
	now         func() time.Time
}

func NewCatalogService(
	brands ports.BrandRepository,
	models ports.CarModelRepository,
	generations ports.GenerationRepository,
	engines ports.EngineRepository,
	colors ports.ColorRepository,
	paintings ports.PaintingRepository,
	comments ports.CommentRepository,
	logger zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		brands:      brands,
		models:      models,
		generations: generations,
		engines:     engines,
		colors:      colors,
		paintings:   paintings,
		comments:    comments,
		logger:      logger,
		now:         time.Now,
	}
}

// ── Brands ────────────────────────────────────────────────────────────────────

func (s *CatalogService) CreateBrand(ctx context.Context, input ports.CreateBrandInput) (*domain.Brand, error) {
	now := s.now().UTC()
	brand, err := s.brands.Create(ctx, &domain.Brand{
		Name:      input.Name,
		LogoURL:   input.LogoURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("brand_id", brand.ID).Str("name", brand.Name).Msg("brand created")
	return brand, nil
}

func (s *CatalogService) GetBrand(ctx context.Context, id string) (*domain.Brand, error) {
	return s.brands.FindByID(ctx, id)
}

func (s *CatalogService) ListBrands(ctx context.Context, page ports.Page) ([]domain.Brand, error) {
	return s.brands.List(ctx, page)
}

func (s *CatalogService) UpdateBrand(ctx context.Context, input ports.UpdateBrandInput) (*domain.Brand, error) {
	brand, err := s.brands.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		brand.Name = input.Name
	}
	if input.LogoURL != "" {
		brand.LogoURL = input.LogoURL
	}
	brand.UpdatedAt = s.now().UTC()
	if err := s.brands.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *CatalogService) DeleteBrand(ctx context.Context, id string) error {
	if _, err := s.brands.FindByID(ctx, id); err != nil {
		return err
	}
	return s.brands.Delete(ctx, id)
}

// ── Car models ────────────────────────────────────────────────────────────────

func (s *CatalogService) CreateCarModel(ctx context.Context, input ports.CreateCarModelInput) (*domain.CarModel, error) {
	if _, err := s.brands.FindByID(ctx, input.BrandID); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	return s.models.Create(ctx, &domain.CarModel{
		BrandID:     input.BrandID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *CatalogService) GetCarModel(ctx context.Context, id string) (*domain.CarModel, error) {
	return s.models.FindByID(ctx, id)
}

func (s *CatalogService) ListCarModels(ctx context.Context, brandID string, page ports.Page) ([]domain.CarModel, error) {
	return s.models.ListByBrand(ctx, brandID, page)
}

// ── Generations ───────────────────────────────────────────────────────────────

func (s *CatalogService) CreateGeneration(ctx context.Context, input ports.CreateGenerationInput) (*domain.Generation, error) {
	if _, err := s.models.FindByID(ctx, input.ModelID); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	return s.generations.Create(ctx, &domain.Generation{
		ModelID:   input.ModelID,
		Name:      input.Name,
		StartYear: input.StartYear,
		EndYear:   input.EndYear,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *CatalogService) GetGeneration(ctx context.Context, id string) (*domain.Generation, error) {
	return s.generations.FindByID(ctx, id)
}

func (s *CatalogService) ListGenerations(ctx context.Context, modelID string, page ports.Page) ([]domain.Generation, error) {
	return s.generations.ListByModel(ctx, modelID, page)
}

// ── Engines ───────────────────────────────────────────────────────────────────

func (s *CatalogService) CreateEngine(ctx context.Context, input ports.CreateEngineInput) (*domain.Engine, error) {
	if _, err := s.generations.FindByID(ctx, input.GenerationID); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	return s.engines.Create(ctx, &domain.Engine{
		GenerationID: input.GenerationID,
		Name:         input.Name,
		FuelType:     input.FuelType,
		HorsePower:   input.HorsePower,
		CapacityCcm:  input.CapacityCcm,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *CatalogService) ListEngines(ctx context.Context, generationID string, page ports.Page) ([]domain.Engine, error) {
	return s.engines.ListByGeneration(ctx, generationID, page)
}

// ── Colors ────────────────────────────────────────────────────────────────────

func (s *CatalogService) CreateColor(ctx context.Context, input ports.CreateColorInput) (*domain.Color, error) {
	hex, err := domain.NormalizeHexCode(input.HexCode)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	return s.colors.Create(ctx, &domain.Color{
		Name:      input.Name,
		HexCode:   hex,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *CatalogService) ListColors(ctx context.Context, page ports.Page) ([]domain.Color, error) {
	return s.colors.List(ctx, page)
}

func (s *CatalogService) UpdateColor(ctx context.Context, input ports.UpdateColorInput) (*domain.Color, error) {
	color, err := s.colors.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		color.Name = input.Name
	}
	if input.HexCode != "" {
		hex, err := domain.NormalizeHexCode(input.HexCode)
		if err != nil {
			return nil, err
		}
		color.HexCode = hex
	}
	color.UpdatedAt = s.now().UTC()
	if err := s.colors.Update(ctx, color); err != nil {
		return nil, err
	}
	return color, nil
}

// ── Paintings ─────────────────────────────────────────────────────────────────

func (s *CatalogService) CreatePainting(ctx context.Context, input ports.CreatePaintingInput) (*domain.Painting, error) {
	if _, err := s.generations.FindByID(ctx, input.GenerationID); err != nil {
		return nil, err
	}
	if _, err := s.colors.FindByID(ctx, input.ColorID); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	return s.paintings.Create(ctx, &domain.Painting{
		GenerationID: input.GenerationID,
		ColorID:      input.ColorID,
		Price:        input.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *CatalogService) ListPaintings(ctx context.Context, generationID string, page ports.Page) ([]domain.Painting, error) {
	return s.paintings.ListByGeneration(ctx, generationID, page)
}

// ── Comments ──────────────────────────────────────────────────────────────────

func (s *CatalogService) CreateComment(ctx context.Context, input ports.CreateCommentInput) (*domain.Comment, error) {
	if _, err := s.models.FindByID(ctx, input.ModelID); err != nil {
		return nil, err
	}
	return s.comments.Create(ctx, &domain.Comment{
		UserID:    input.UserID,
		ModelID:   input.ModelID,
		Text:      input.Text,
		Rating:    input.Rating,
		CreatedAt: s.now().UTC(),
	})
}

func (s *CatalogService) ListComments(ctx context.Context, modelID string, page ports.Page) ([]domain.Comment, error) {
	return s.comments.ListByModel(ctx, modelID, page)
}

// DeleteComment removes a comment. Authors may delete their own comments;
// admins may delete any.
func (s *CatalogService) DeleteComment(ctx context.Context, id string, requester ports.TokenClaims) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if requester.Role != domain.RoleAdmin && comment.UserID != requester.UserID {
		return domain.NewError(domain.KindInvalidToken, "role %s is not permitted to perform this operation", requester.Role)
	}
	return s.comments.Delete(ctx, id)
}

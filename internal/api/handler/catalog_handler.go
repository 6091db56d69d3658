package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

// CatalogHandler handles HTTP requests for the car-catalog entities.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ── Brands ────────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	var req createBrandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	brand, err := h.catalog.CreateBrand(c.Request().Context(), ports.CreateBrandInput{
		Name:    req.Name,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, brand)
}

func (h *CatalogHandler) GetBrand(c echo.Context) error {
	brand, err := h.catalog.GetBrand(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalog.ListBrands(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brands)
}

func (h *CatalogHandler) UpdateBrand(c echo.Context) error {
	var req updateBrandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	brand, err := h.catalog.UpdateBrand(c.Request().Context(), ports.UpdateBrandInput{
		ID:      c.Param("id"),
		Name:    req.Name,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

func (h *CatalogHandler) DeleteBrand(c echo.Context) error {
	if err := h.catalog.DeleteBrand(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ── Car models ────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateCarModel(c echo.Context) error {
	var req createCarModelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	model, err := h.catalog.CreateCarModel(c.Request().Context(), ports.CreateCarModelInput{
		BrandID:     req.BrandID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model)
}

func (h *CatalogHandler) GetCarModel(c echo.Context) error {
	model, err := h.catalog.GetCarModel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model)
}

func (h *CatalogHandler) ListCarModels(c echo.Context) error {
	models, err := h.catalog.ListCarModels(c.Request().Context(), c.QueryParam("brand_id"), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models)
}

// ── Generations ───────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateGeneration(c echo.Context) error {
	var req createGenerationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	generation, err := h.catalog.CreateGeneration(c.Request().Context(), ports.CreateGenerationInput{
		ModelID:   req.ModelID,
		Name:      req.Name,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, generation)
}

func (h *CatalogHandler) GetGeneration(c echo.Context) error {
	generation, err := h.catalog.GetGeneration(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generation)
}

func (h *CatalogHandler) ListGenerations(c echo.Context) error {
	generations, err := h.catalog.ListGenerations(c.Request().Context(), c.QueryParam("model_id"), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generations)
}

// ── Engines ───────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateEngine(c echo.Context) error {
	var req createEngineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	engine, err := h.catalog.CreateEngine(c.Request().Context(), ports.CreateEngineInput{
		GenerationID: req.GenerationID,
		Name:         req.Name,
		FuelType:     req.FuelType,
		HorsePower:   req.HorsePower,
		CapacityCcm:  req.CapacityCcm,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, engine)
}

func (h *CatalogHandler) ListEngines(c echo.Context) error {
	engines, err := h.catalog.ListEngines(c.Request().Context(), c.QueryParam("generation_id"), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, engines)
}

// ── Colors ────────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateColor(c echo.Context) error {
	var req createColorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	color, err := h.catalog.CreateColor(c.Request().Context(), ports.CreateColorInput{
		Name:    req.Name,
		HexCode: req.HexCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, color)
}

func (h *CatalogHandler) ListColors(c echo.Context) error {
	colors, err := h.catalog.ListColors(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, colors)
}

func (h *CatalogHandler) UpdateColor(c echo.Context) error {
	var req updateColorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	color, err := h.catalog.UpdateColor(c.Request().Context(), ports.UpdateColorInput{
		ID:      c.Param("id"),
		Name:    req.Name,
		HexCode: req.HexCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, color)
}

// ── Paintings ─────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreatePainting(c echo.Context) error {
	var req createPaintingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	painting, err := h.catalog.CreatePainting(c.Request().Context(), ports.CreatePaintingInput{
		GenerationID: req.GenerationID,
		ColorID:      req.ColorID,
		Price:        req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, painting)
}

func (h *CatalogHandler) ListPaintings(c echo.Context) error {
	paintings, err := h.catalog.ListPaintings(c.Request().Context(), c.QueryParam("generation_id"), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paintings)
}

// ── Comments ──────────────────────────────────────────────────────────────────

// CreateComment posts a comment on a car model as the authenticated user.
func (h *CatalogHandler) CreateComment(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.catalog.CreateComment(c.Request().Context(), ports.CreateCommentInput{
		UserID:  claims.UserID,
		ModelID: c.Param("id"),
		Text:    req.Text,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

func (h *CatalogHandler) ListComments(c echo.Context) error {
	comments, err := h.catalog.ListComments(c.Request().Context(), c.Param("id"), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// DeleteComment removes a comment; authors delete their own, admins any.
func (h *CatalogHandler) DeleteComment(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteComment(c.Request().Context(), c.Param("id"), claims); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

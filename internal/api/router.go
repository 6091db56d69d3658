package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/api/handler"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/api/middleware"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/service"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/infrastructure/config"
	mongodb "github.com/jstanislawczyk/compcar-car-service-sub000/internal/infrastructure/db/mongo"
	redisdb "github.com/jstanislawczyk/compcar-car-service-sub000/internal/infrastructure/db/redis"
)

// Dependencies groups the externally owned collaborators the router wires
// into handlers. The mailer and welcome queue are injectable so tests can
// run without an SMTP server.
type Dependencies struct {
	Mongo   *mongo.Database
	Redis   *redis.Client
	Mailer  ports.Mailer
	Welcome ports.WelcomeQueue
	Logger  zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("compcar"))

	// --- Repositories ---
	users := mongodb.NewUserRepository(deps.Mongo)
	confirmations := mongodb.NewConfirmationRepository(deps.Mongo)
	brands := mongodb.NewBrandRepository(deps.Mongo)
	models := mongodb.NewCarModelRepository(deps.Mongo)
	generations := mongodb.NewGenerationRepository(deps.Mongo)
	engines := mongodb.NewEngineRepository(deps.Mongo)
	colors := mongodb.NewColorRepository(deps.Mongo)
	paintings := mongodb.NewPaintingRepository(deps.Mongo)
	comments := mongodb.NewCommentRepository(deps.Mongo)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	guard := redisdb.NewResendGuard(deps.Redis, 0)
	accounts := service.NewAccountService(
		users, confirmations, tokens, deps.Mailer, deps.Welcome, guard,
		cfg.BcryptCost, cfg.ConfirmationTTL, deps.Logger,
	)
	catalog := service.NewCatalogService(
		brands, models, generations, engines, colors, paintings, comments, deps.Logger,
	)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(accounts)
	catalogHandler := handler.NewCatalogHandler(catalog)

	anyRole := middleware.Auth(tokens)
	adminOnly := middleware.Auth(tokens, domain.RoleAdmin)
	authLimiter := middleware.NewRateLimiter(2, 5).Middleware()

	// --- Auth routes ---
	auth := e.Group("/auth", authLimiter)
	auth.POST("/register", authHandler.Register)
	auth.POST("/register/confirmation/resend", authHandler.ResendConfirmation)
	auth.POST("/register/confirmation/:code", authHandler.Activate)
	auth.POST("/login", authHandler.Login)

	// --- Catalog routes: public reads, admin writes ---
	v1 := e.Group("/v1")

	v1.GET("/brands", catalogHandler.ListBrands)
	v1.GET("/brands/:id", catalogHandler.GetBrand)
	v1.POST("/brands", catalogHandler.CreateBrand, adminOnly)
	v1.PUT("/brands/:id", catalogHandler.UpdateBrand, adminOnly)
	v1.DELETE("/brands/:id", catalogHandler.DeleteBrand, adminOnly)

	v1.GET("/models", catalogHandler.ListCarModels)
	v1.GET("/models/:id", catalogHandler.GetCarModel)
	v1.POST("/models", catalogHandler.CreateCarModel, adminOnly)

	v1.GET("/generations", catalogHandler.ListGenerations)
	v1.GET("/generations/:id", catalogHandler.GetGeneration)
	v1.POST("/generations", catalogHandler.CreateGeneration, adminOnly)

	v1.GET("/engines", catalogHandler.ListEngines)
	v1.POST("/engines", catalogHandler.CreateEngine, adminOnly)

	v1.GET("/colors", catalogHandler.ListColors)
	v1.POST("/colors", catalogHandler.CreateColor, adminOnly)
	v1.PUT("/colors/:id", catalogHandler.UpdateColor, adminOnly)

	v1.GET("/paintings", catalogHandler.ListPaintings)
	v1.POST("/paintings", catalogHandler.CreatePainting, adminOnly)

	v1.GET("/models/:id/comments", catalogHandler.ListComments)
	v1.POST("/models/:id/comments", catalogHandler.CreateComment, anyRole)
	v1.DELETE("/comments/:id", catalogHandler.DeleteComment, anyRole)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}

package router

import (
	"time"

	"github.com/TuringTechX/openfoodnetwork/internal/config"
	"github.com/TuringTechX/openfoodnetwork/internal/handler"
	"github.com/TuringTechX/openfoodnetwork/internal/middleware"
	"github.com/TuringTechX/openfoodnetwork/internal/repository"
	"github.com/TuringTechX/openfoodnetwork/internal/service"
	"github.com/TuringTechX/openfoodnetwork/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher, cache *repository.CatalogCache) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	hubRepo := repository.NewHubRepository(db)
	cycleRepo := repository.NewCycleRepository(db)
	variantRepo := repository.NewVariantRepository(db)
	productRepo := repository.NewProductRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	visibility := service.NewTagRuleFilter(hubRepo)
	attrFilter := service.NewNameContainsFilter()
	catalogSvc := service.NewCatalogService(
		hubRepo, cycleRepo, variantRepo, productRepo,
		visibility, attrFilter, cache, cfg.DefaultPerPage,
	)
	overrideSvc := service.NewOverrideService(overrideRepo, hubRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogH := handler.NewCatalogHandler(catalogSvc)
	overridesH := handler.NewOverridesHandler(overrideSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.GET("/hubs/:id/catalog", catalogH.Resolve)

		v1.GET("/hubs/:id/overrides", overridesH.List)
		v1.PUT("/hubs/:id/overrides", overridesH.Upsert)
		v1.DELETE("/hubs/:id/overrides/:variant_id", overridesH.Delete)
	}

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

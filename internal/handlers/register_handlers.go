package handlers

import (
	"net/http"

	"github.com/finflowhq/finflow_bot/cmd/docs"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/middleware"
	"github.com/finflowhq/finflow_bot/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group: every route requires a
// gateway-signed bearer token and shares one in-memory rate limit.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return err
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	v1 := r.Group("/api/v1",
		middleware.RateLimit(limiterInstance),
		middleware.AuthMiddleware(cfg),
	)

	registerMessageRoutes(v1, services.Access, services.Account, services.Finance)
	registerStatsRoutes(v1, services.Access, services.Finance)
	registerGoalRoutes(v1, services.Access, services.Goal)
	registerDiaryRoutes(v1, services.Access, services.Diary)
	registerReportRoutes(v1, services.Access, services.Report)
	registerExportRoutes(v1, services.Access, services.Export)
	registerSettingsRoutes(v1, services.Access, services.Account)
	registerAdminRoutes(v1, services.Access, services.Account, services.Report)
	return nil
}

// setupSwaggerRoutes exposes the API docs outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

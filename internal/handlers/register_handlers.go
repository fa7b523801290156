package handlers

import (
	"net/http"

	"github.com/SscSPs/fintrack/cmd/docs"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/middleware"
	"github.com/SscSPs/fintrack/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// apiLimiter guards /api/v1 and loginLimiter guards the credential endpoints; either may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
	loginLimiter *limiter.Limiter,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	registerAuthRoutes(r, services.Auth, loginLimiter)

	setupAPIV1Routes(r, cfg, services, apiLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if apiLimiter != nil {
		v1.Use(middleware.RateLimit(apiLimiter))
	}

	registerUserRoutes(v1, services.User)
	registerCurrencyRoutes(v1, services.Currency)
	registerWalletRoutes(v1, services.Wallet)
	registerBalanceRoutes(v1, services.Balance)
	registerCategoryRoutes(v1, services.Category)
	registerTransactionRoutes(v1, services.Transaction)
	registerGoalRoutes(v1, services.Goal)
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Exported registration helpers, used by handler tests to mount a single resource.

func RegisterAuthRoutes(r gin.IRouter, svc portssvc.AuthSvc, loginLimiter *limiter.Limiter) {
	registerValidators()
	registerAuthRoutes(r, svc, loginLimiter)
}

func RegisterUserRoutes(rg *gin.RouterGroup, svc portssvc.UserSvcFacade) {
	registerValidators()
	registerUserRoutes(rg, svc)
}

func RegisterCurrencyRoutes(rg *gin.RouterGroup, svc portssvc.CurrencySvcFacade) {
	registerCurrencyRoutes(rg, svc)
}

func RegisterWalletRoutes(rg *gin.RouterGroup, svc portssvc.WalletSvcFacade) {
	registerValidators()
	registerWalletRoutes(rg, svc)
}

func RegisterBalanceRoutes(rg *gin.RouterGroup, svc portssvc.BalanceSvc) {
	registerBalanceRoutes(rg, svc)
}

func RegisterCategoryRoutes(rg *gin.RouterGroup, svc portssvc.CategorySvcFacade) {
	registerCategoryRoutes(rg, svc)
}

func RegisterTransactionRoutes(rg *gin.RouterGroup, svc portssvc.TransactionSvcFacade) {
	registerTransactionRoutes(rg, svc)
}

func RegisterGoalRoutes(rg *gin.RouterGroup, svc portssvc.GoalSvcFacade) {
	registerGoalRoutes(rg, svc)
}

package v1

import (
	"net/http"
	"time"

	"go-jobmarket-backend/config"
	"go-jobmarket-backend/internal/delivery/http/middleware"
	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC      domain.ProfileUsecase
	ApplicationUC  domain.ApplicationUsecase
	ConversationUC domain.ConversationUsecase
	AppointmentUC  domain.AppointmentUsecase
	FavoriteUC     domain.FavoriteUsecase
	PremiumUC      domain.PremiumUsecase
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitGlobalThreshold,
		Window: time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
	}))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes: every endpoint of this subsystem requires an
	// authenticated actor
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.ProfileUC))
	{
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewConversationHandler(protected, deps.ConversationUC)
		NewAppointmentHandler(protected, deps.AppointmentUC)
		NewFavoriteHandler(protected, deps.FavoriteUC)
		NewPremiumHandler(protected, deps.PremiumUC)
	}

	return r
}

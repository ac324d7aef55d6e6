package router

import (
	"github.com/gin-gonic/gin"

	"github.com/buscart/buscart-backend/internal/config"
	"github.com/buscart/buscart-backend/internal/http/handlers"
	"github.com/buscart/buscart-backend/internal/http/middleware"
)

func SetupRouter(
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	hiringHandler *handlers.HiringHandler,
	reviewHandler *handlers.ReviewHandler,
	catalogHandler *handlers.CatalogHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	// Запись идёт через identity-провайдер и ограничена по частоте.
	auth := middleware.IdentityMiddleware(cfg.IdentityHeader)
	writeRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)

	hiring := api.Group("/hiring")
	{
		hiring.GET("/requests", hiringHandler.ListActiveRequests)
		hiring.GET("/requests/mine", auth, hiringHandler.ListMyRequests)
		hiring.GET("/requests/:id", hiringHandler.GetRequest)
		hiring.POST("/requests", auth, writeRateLimit, hiringHandler.CreateRequest)
		hiring.POST("/requests/:id/responses", auth, writeRateLimit, hiringHandler.CreateResponse)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("/:type/:id", reviewHandler.GetReviews)
		reviews.GET("/:type/:id/can-review", auth, reviewHandler.CanReview)
		reviews.POST("", auth, writeRateLimit, reviewHandler.CreateReview)
	}

	api.GET("/artists", catalogHandler.ListArtists)
	api.GET("/artists/:id", catalogHandler.GetArtist)
	api.POST("/artists", auth, writeRateLimit, catalogHandler.CreateArtist)
	api.GET("/venues", catalogHandler.ListVenues)
	api.GET("/venues/:id", catalogHandler.GetVenue)
	api.POST("/venues", auth, writeRateLimit, catalogHandler.CreateVenue)
	api.GET("/categories", catalogHandler.ListCategories)

	return r
}

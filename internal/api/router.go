package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/tirtatarum/spk/internal/api/v1"
	"github.com/tirtatarum/spk/internal/config"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/logger"
	"github.com/tirtatarum/spk/internal/rest/middleware"
)

// Handlers collects every route handler the router mounts.
type Handlers struct {
	Health     *v1.HealthHandler
	Stats      *v1.StatsHandler
	Penyegelan *v1.PenyegelanHandler
	Pencabutan *v1.PencabutanHandler
	SPK        *v1.SPKHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	// Unknown paths and wrong methods get the same envelope as other errors.
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ierr.ErrorResponse{
			Error: ierr.ErrorDetail{Display: "Endpoint not found"},
		})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ierr.ErrorResponse{
			Error: ierr.ErrorDetail{Display: "Method not allowed"},
		})
	})

	router.GET("/health", handlers.Health.Health)
	router.GET("/stats", handlers.Stats.GetStats)

	penyegelan := router.Group("/penyegelan")
	{
		penyegelan.GET("", handlers.Penyegelan.List)
		penyegelan.GET("/:id", handlers.Penyegelan.Get)
		penyegelan.PUT("/:id", handlers.Penyegelan.Update)
	}

	pencabutan := router.Group("/pencabutan")
	{
		pencabutan.GET("", handlers.Pencabutan.List)
		pencabutan.GET("/:id", handlers.Pencabutan.Get)
		pencabutan.PUT("/:id", handlers.Pencabutan.Update)
	}

	router.POST("/generate-spk", handlers.SPK.Generate)
	router.POST("/generate-spk/pdf", handlers.SPK.GeneratePDF)

	return router
}

// api/router.go
package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Annany2002/schema-builder/api/handlers"
	"github.com/Annany2002/schema-builder/api/middleware"
	"github.com/Annany2002/schema-builder/config"
	"github.com/Annany2002/schema-builder/internal/core"
	"github.com/Annany2002/schema-builder/internal/storage"
)

// SetupRouter initializes the Gin router and sets up all routes.
func SetupRouter(store *storage.SchemaStore, editor *core.Editor, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(corsConfig(cfg)))

	ratelimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	router.Use(middleware.RateLimitMiddleware(ratelimiter))
	// Runs after the handlers so it can map attached errors to responses
	router.Use(middleware.ErrorHandler())

	schemaHandler := handlers.NewSchemaHandler(store, editor)
	elementHandler := handlers.NewElementHandler(store, editor)
	previewHandler := handlers.NewPreviewHandler(store)

	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })

	apiRoutes := router.Group("/api/v1")
	{
		apiRoutes.GET("/schemas", schemaHandler.ListSchemas)
		apiRoutes.POST("/schemas", schemaHandler.CreateSchema)
		apiRoutes.GET("/schema-names", schemaHandler.ListSchemaNames)
		apiRoutes.GET("/schema-by-name/:name", schemaHandler.GetSchemaByName)

		apiRoutes.GET("/active", schemaHandler.GetActive)
		apiRoutes.PUT("/active", schemaHandler.SelectSchema)

		apiRoutes.GET("/schemas/:schema_id", schemaHandler.GetSchema)
		apiRoutes.PUT("/schemas/:schema_id", schemaHandler.UpdateSchema)
		apiRoutes.DELETE("/schemas/:schema_id", schemaHandler.DeleteSchema)

		apiRoutes.GET("/schemas/:schema_id/preview", previewHandler.Preview)
		apiRoutes.GET("/schemas/:schema_id/cards", previewHandler.Cards)

		apiRoutes.GET("/schemas/:schema_id/elements", elementHandler.ListElements)
		apiRoutes.POST("/schemas/:schema_id/elements", elementHandler.AddElement)
		apiRoutes.POST("/schemas/:schema_id/presets/:kind", elementHandler.AddPreset)
		apiRoutes.PATCH("/schemas/:schema_id/elements/:element_id", elementHandler.UpdateElementField)
		apiRoutes.DELETE("/schemas/:schema_id/elements/:element_id", elementHandler.RemoveElement)
		apiRoutes.POST("/schemas/:schema_id/elements/:element_id/move", elementHandler.MoveElement)
	}

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}

package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/vetrina-app/vetrina-backend/internal/handlers"
  "github.com/vetrina-app/vetrina-backend/internal/middleware"
)

type RouterConfig struct {
  AuthMiddleware        *middleware.AuthMiddleware
  ProfileHandler        *handlers.ProfileHandler
  PreferencesHandler    *handlers.PreferencesHandler
  ChatPreferenceHandler *handlers.ChatPreferenceHandler
  VersionHandler        *handlers.VersionHandler
  BoostHandler          *handlers.BoostHandler
  HubHandler            *handlers.HubHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()
  router.Use(otelgin.Middleware("vetrina-backend"))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)

// ===============
// || Protected ||
// ===============
  api := router.Group("/api")
  api.Use(cfg.AuthMiddleware.RequireAuth())
  // Style profile
  api.POST("/profile/events", cfg.ProfileHandler.IngestEvent)
  api.GET("/profile", cfg.ProfileHandler.GetProfile)
  api.GET("/profile/preferences/top", cfg.ProfileHandler.GetTopPreferences)
  api.POST("/profile/snapshots", cfg.ProfileHandler.CreateSnapshot)
  // Explicit preferences
  api.GET("/preferences", cfg.PreferencesHandler.GetPreferences)
  api.PUT("/preferences", cfg.PreferencesHandler.PutPreferences)
  api.PATCH("/preferences", cfg.PreferencesHandler.PatchPreferences)
  api.POST("/preferences/chat", cfg.ChatPreferenceHandler.IngestFilters)
  // Versioning
  api.POST("/profile/versions", cfg.VersionHandler.CreateVersion)
  api.GET("/profile/versions", cfg.VersionHandler.ListVersions)
  api.POST("/profile/versions/:id/restore", cfg.VersionHandler.RestoreVersion)
  // Read-side consumers
  api.POST("/recommendations/boost", cfg.BoostHandler.Boost)
  api.GET("/personalization/hub", cfg.HubHandler.GetHub)

  return router
}

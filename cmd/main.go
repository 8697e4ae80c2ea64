package main

import (
  "context"
  "fmt"
  "os"
  "time"
  "github.com/redis/go-redis/v9"
  "github.com/robfig/cron/v3"
  "github.com/vetrina-app/vetrina-backend/internal/config"
  "github.com/vetrina-app/vetrina-backend/internal/db"
  "github.com/vetrina-app/vetrina-backend/internal/handlers"
  "github.com/vetrina-app/vetrina-backend/internal/jobs"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/middleware"
  "github.com/vetrina-app/vetrina-backend/internal/observability"
  "github.com/vetrina-app/vetrina-backend/internal/repos"
  "github.com/vetrina-app/vetrina-backend/internal/server"
  "github.com/vetrina-app/vetrina-backend/internal/services"
  "github.com/vetrina-app/vetrina-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  port := utils.GetEnv("PORT", "8080", log)
  decayCron := utils.GetEnv("DECAY_CRON", "0 3 * * 0", log)
  boostCalibrationPath := utils.GetEnv("BOOST_CALIBRATION_PATH", "", log)
  redisAddr := utils.GetEnv("REDIS_ADDR", "", log)
  redisDB := utils.GetEnvAsInt("REDIS_DB", 0, log)

  // Tracing
  shutdownOtel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "vetrina-backend",
    Environment: os.Getenv("APP_ENV"),
    Version:     os.Getenv("APP_VERSION"),
  })

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Redis (hub cache only; nil client degrades to uncached reads)
  var rdb *redis.Client
  if redisAddr != "" {
    rdb = redis.NewClient(&redis.Options{
      Addr:        redisAddr,
      DB:          redisDB,
      DialTimeout: 5 * time.Second,
    })
    pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    if err := rdb.Ping(pingCtx).Err(); err != nil {
      log.Warn("Redis unavailable, hub cache disabled", "error", err)
      rdb = nil
    }
    cancel()
  }

  // Boost calibration
  boostCal, err := config.LoadBoostCalibration(boostCalibrationPath)
  if err != nil {
    log.Warn("Boost calibration load failed, using defaults", "error", err)
    boostCal = config.DefaultBoostCalibration()
  }

  // Repos
  log.Info("Setting up Repos from main...")
  styleProfileRepo := repos.NewStyleProfileRepo(thePG, log)
  styleProfileEventRepo := repos.NewStyleProfileEventRepo(thePG, log)
  styleProfileSnapshotRepo := repos.NewStyleProfileSnapshotRepo(thePG, log)
  profileVersionRepo := repos.NewProfileVersionRepo(thePG, log)
  profileDiffRepo := repos.NewProfileDiffRepo(thePG, log)
  shopperProfileRepo := repos.NewShopperProfileRepo(thePG, log)
  userPreferenceRepo := repos.NewUserPreferenceRepo(thePG, log)
  influencerRepo := repos.NewInfluencerRepo(thePG, log)
  itemRepo := repos.NewItemRepo(thePG, log)
  jobRunRepo := repos.NewJobRunRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  metadataService := services.NewSourceMetadataService(influencerRepo, itemRepo, log)
  styleProfileService := services.NewStyleProfileService(styleProfileRepo, styleProfileEventRepo, styleProfileSnapshotRepo, metadataService, log)
  boostService := services.NewBoostService(styleProfileService, boostCal, log)
  shopperProfileService := services.NewShopperProfileService(shopperProfileRepo, log)
  preferencesService := services.NewPreferencesService(userPreferenceRepo, log)
  versionService := services.NewProfileVersionService(services.NewGormTxRunner(thePG), profileVersionRepo, shopperProfileRepo, userPreferenceRepo, log)
  diffService := services.NewProfileDiffService(profileDiffRepo, shopperProfileRepo, userPreferenceRepo, log)
  chatPreferenceService := services.NewChatPreferenceService(preferencesService, versionService, diffService, styleProfileService, log)
  var hubCache services.HubCache
  if rdb != nil {
    hubCache = services.NewRedisHubCache(rdb)
  }
  hubService := services.NewPersonalizationHubService(hubCache, shopperProfileService, preferencesService, styleProfileService, styleProfileEventRepo, log)

  // Decay schedule
  log.Info("Setting up decay schedule from main...")
  decayJob := jobs.NewDecayJob(thePG, styleProfileRepo, styleProfileService, jobRunRepo, log)
  scheduler := cron.New()
  if _, err := scheduler.AddFunc(decayCron, func() {
    if err := decayJob.Run(context.Background()); err != nil {
      log.Error("Decay run failed", "error", err)
    }
  }); err != nil {
    log.Error("Invalid decay schedule", "cron", decayCron, "error", err)
    os.Exit(1)
  }
  scheduler.Start()
  defer scheduler.Stop()

  // Handlers
  log.Info("Setting up handlers from main...")
  profileHandler := handlers.NewProfileHandler(styleProfileService)
  preferencesHandler := handlers.NewPreferencesHandler(preferencesService)
  chatPreferenceHandler := handlers.NewChatPreferenceHandler(chatPreferenceService)
  versionHandler := handlers.NewVersionHandler(versionService)
  boostHandler := handlers.NewBoostHandler(boostService)
  hubHandler := handlers.NewHubHandler(hubService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, jwtSecretKey)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthMiddleware:        authMiddleware,
    ProfileHandler:        profileHandler,
    PreferencesHandler:    preferencesHandler,
    ChatPreferenceHandler: chatPreferenceHandler,
    VersionHandler:        versionHandler,
    BoostHandler:          boostHandler,
    HubHandler:            hubHandler,
  })

  log.Info("Starting server", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server exited", "error", err)
  }

  if shutdownOtel != nil {
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = shutdownOtel(shutdownCtx)
  }
}

package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/infrastructure/config"
	"github.com/medical/backend/internal/infrastructure/geocode"
	"github.com/medical/backend/internal/infrastructure/logger"
	"github.com/medical/backend/internal/infrastructure/migration"
	"github.com/medical/backend/internal/infrastructure/persistence"
	"github.com/medical/backend/internal/interfaces/http/handler"
	"github.com/medical/backend/internal/interfaces/http/router"
	"github.com/medical/backend/internal/seeding"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting medical backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	if cfg.Seed.Enabled {
		if err := runSeeding(cfg, db, log); err != nil {
			log.Fatal("Failed to seed reference data", zap.Error(err))
		}
	} else {
		log.Info("Reference data seeding disabled")
	}

	engine := buildEngine(cfg, db, log)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
}

func runMigrations(cfg *config.Config, log *zap.Logger) error {
	m, err := migration.NewFromURL(cfg.Database.DSN(), cfg.Database.MigrationsPath, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = m.Close()
	}()
	return m.Up()
}

func runSeeding(cfg *config.Config, db *persistence.Database, log *zap.Logger) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	var geocoder geocode.Geocoder
	if cfg.Geocode.Enabled {
		geocoder = geocode.NewClient(cfg.Geocode.Endpoint, cfg.Geocode.RequestsPerSecond, cfg.Geocode.Timeout)
	}

	seed := cfg.Seed.DoctorRandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	runner := seeding.NewRunner(db.DB, log,
		seeding.NewUserTypeSeeder(cat),
		seeding.NewRoleSeeder(cat),
		seeding.NewPermissionSeeder(cat, cfg.Seed.MigrateLegacyNames),
		seeding.NewRolePermissionSeeder(cat),
		seeding.NewAdminSeeder(cfg.Seed.AdminPassword),
		seeding.NewDepartmentSeeder(cat),
		seeding.NewDoctorSeeder(rng, cfg.Seed.DoctorsPerDeptMin, cfg.Seed.DoctorsPerDeptMax),
		seeding.NewDrugCategorySeeder(cat),
		seeding.NewDrugSeeder(cat),
		seeding.NewHospitalSeeder(cat, geocoder, log),
	)
	return runner.Run(context.Background())
}

func buildEngine(cfg *config.Config, db *persistence.Database, log *zap.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.GinRecovery(log))

	engine.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{"status": "ok"}
		if err := db.Ping(); err != nil {
			status = http.StatusServiceUnavailable
			body = gin.H{"status": "degraded"}
		}
		c.JSON(status, body)
	})

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(cfg.App.Name, version))
	r.Register(handler.NewIdentityHandler(
		persistence.NewGormRoleRepository(db.DB),
		persistence.NewGormPermissionRepository(db.DB),
		persistence.NewGormUserRepository(db.DB),
	))
	r.Register(handler.NewHospitalHandler(
		persistence.NewGormDepartmentRepository(db.DB),
		persistence.NewGormDoctorRepository(db.DB),
		persistence.NewGormHospitalRepository(db.DB),
	))
	r.Register(handler.NewPharmacyHandler(persistence.NewGormDrugRepository(db.DB)))
	r.Setup()

	return engine
}

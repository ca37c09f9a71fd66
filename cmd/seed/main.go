// Command seed reconciles the reference-data catalogs into the database
// without starting the API server. It is meant for operators: -dry-run
// reports the writes a real run would apply and rolls everything back, and
// -only restricts the run to a single seeder.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/infrastructure/config"
	"github.com/medical/backend/internal/infrastructure/geocode"
	"github.com/medical/backend/internal/infrastructure/logger"
	"github.com/medical/backend/internal/infrastructure/persistence"
	"github.com/medical/backend/internal/seeding"
)

func main() {
	var (
		dryRun bool
		only   string
	)
	flag.BoolVar(&dryRun, "dry-run", false, "Compute and report writes, then roll back")
	flag.StringVar(&only, "only", "", "Run a single seeder by name")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	runner, err := buildRunner(cfg, db, log)
	if err != nil {
		log.Fatal("Failed to build seeding runner", zap.Error(err))
	}
	runner.SetDryRun(dryRun)

	ctx := context.Background()
	if only != "" {
		res, err := runner.RunOnly(ctx, only)
		if err != nil {
			log.Fatal("Seeder failed", zap.String("seeder", only), zap.Error(err))
		}
		log.Info("Seeder finished",
			zap.String("seeder", only),
			zap.Int("inserted", res.Inserted),
			zap.Int("updated", res.Updated),
			zap.Bool("dry_run", dryRun),
		)
		return
	}

	if err := runner.Run(ctx); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
}

func buildRunner(cfg *config.Config, db *persistence.Database, log *zap.Logger) (*seeding.Runner, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
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

	return seeding.NewRunner(db.DB, log,
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
	), nil
}

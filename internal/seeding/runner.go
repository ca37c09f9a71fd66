package seeding

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder reconciles one catalog inside the transaction it is handed.
// Implementations must be idempotent: re-running against an unchanged
// catalog returns an empty Result.
type Seeder interface {
	Name() string
	Seed(ctx context.Context, tx *gorm.DB) (Result, error)
}

// errDryRun forces a rollback after a dry-run seeder invocation
var errDryRun = errors.New("seeding: dry run rollback")

// Runner executes seeders sequentially in dependency order. A failed seeder
// aborts the run so dependent seeders never observe incomplete prerequisite
// data; soft-skips (missing prerequisites) are ordinary empty results, not
// failures.
type Runner struct {
	db      *gorm.DB
	logger  *zap.Logger
	seeders []Seeder
	dryRun  bool
}

// NewRunner creates a runner over the given seeders, preserving their order
func NewRunner(db *gorm.DB, logger *zap.Logger, seeders ...Seeder) *Runner {
	return &Runner{
		db:      db,
		logger:  logger.Named("seeding"),
		seeders: seeders,
	}
}

// SetDryRun makes the runner roll back every seeder transaction after
// computing its would-be writes.
func (r *Runner) SetDryRun(dryRun bool) {
	r.dryRun = dryRun
}

// Seeders returns the configured seeders in execution order
func (r *Runner) Seeders() []Seeder {
	return r.seeders
}

// Run executes all seeders in order. Each seeder's writes commit in a
// single transaction; the first hard failure stops the run.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	var total Result

	for _, s := range r.seeders {
		res, err := r.runOne(ctx, s)
		if err != nil {
			r.logger.Error("Seeder failed",
				zap.String("seeder", s.Name()),
				zap.Error(err),
			)
			return err
		}

		if res.Empty() {
			r.logger.Debug("Seeder up to date", zap.String("seeder", s.Name()))
		} else {
			r.logger.Info("Seeder applied",
				zap.String("seeder", s.Name()),
				zap.Int("inserted", res.Inserted),
				zap.Int("updated", res.Updated),
				zap.Bool("dry_run", r.dryRun),
			)
		}
		total = total.Add(res)
	}

	r.logger.Info("Seeding completed",
		zap.Int("inserted", total.Inserted),
		zap.Int("updated", total.Updated),
		zap.Duration("duration", time.Since(start)),
		zap.Bool("dry_run", r.dryRun),
	)
	return nil
}

// RunOnly executes a single seeder by name
func (r *Runner) RunOnly(ctx context.Context, name string) (Result, error) {
	for _, s := range r.seeders {
		if s.Name() == name {
			return r.runOne(ctx, s)
		}
	}
	return Result{}, errors.New("seeding: unknown seeder " + name)
}

func (r *Runner) runOne(ctx context.Context, s Seeder) (Result, error) {
	var res Result
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = s.Seed(ctx, tx)
		if err != nil {
			return err
		}
		if r.dryRun {
			return errDryRun
		}
		return nil
	})
	if errors.Is(err, errDryRun) {
		err = nil
	}
	return res, err
}

// Package seeding populates the relational store with reference data at
// startup. Each seeder reconciles one catalog against its table: missing
// rows are inserted, rows whose tracked fields drifted are updated, and an
// unchanged catalog produces no writes at all. All writes of one seeder
// invocation commit in a single transaction.
package seeding

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// Result aggregates the writes applied by one seeder invocation.
type Result struct {
	Inserted int
	Updated  int
}

// Empty reports whether the invocation wrote nothing
func (r Result) Empty() bool {
	return r.Inserted == 0 && r.Updated == 0
}

// Add merges another result into this one
func (r Result) Add(other Result) Result {
	return Result{
		Inserted: r.Inserted + other.Inserted,
		Updated:  r.Updated + other.Updated,
	}
}

// Reconciliation describes how one catalog maps onto one table.
// C is the catalog entry type, M the persistence model type.
type Reconciliation[C any, M any] struct {
	// CatalogKey extracts the natural key from a catalog entry.
	CatalogKey func(C) string
	// ModelKey extracts the natural key from a persisted row.
	ModelKey func(*M) string
	// New constructs a fresh row for a catalog entry with no persisted
	// counterpart: generated surrogate id, all tracked fields copied,
	// CreatedAt/UpdatedAt stamped to now.
	New func(C) (M, error)
	// Apply compares each tracked field between the catalog entry and the
	// persisted row. When any differ it mutates the row, stamps UpdatedAt,
	// and returns true. When all match it must leave the row untouched and
	// return false.
	Apply func(C, *M) bool
}

// Reconcile brings the rows of one table in line with a catalog: it loads
// all existing rows into a natural-key map, walks the catalog in order,
// batches inserts for absent keys and updates for drifted rows, and applies
// both batches through tx. A second run against an unchanged catalog
// performs zero writes. Rows are never deleted.
func Reconcile[C any, M any](tx *gorm.DB, entries []C, rec Reconciliation[C, M]) (Result, error) {
	var existing []M
	if err := tx.Find(&existing).Error; err != nil {
		return Result{}, fmt.Errorf("failed to load existing rows: %w", err)
	}

	byKey := make(map[string]*M, len(existing))
	for i := range existing {
		byKey[rec.ModelKey(&existing[i])] = &existing[i]
	}

	var inserts []M
	var updates []*M
	for _, entry := range entries {
		key := rec.CatalogKey(entry)
		row, ok := byKey[key]
		if !ok {
			fresh, err := rec.New(entry)
			if err != nil {
				return Result{}, fmt.Errorf("failed to build row for %q: %w", key, err)
			}
			inserts = append(inserts, fresh)
			continue
		}
		if rec.Apply(entry, row) {
			updates = append(updates, row)
		}
	}

	if len(inserts) > 0 {
		if err := tx.Create(&inserts).Error; err != nil {
			return Result{}, fmt.Errorf("failed to insert batch: %w", err)
		}
	}
	for _, row := range updates {
		if err := tx.Save(row).Error; err != nil {
			return Result{}, fmt.Errorf("failed to update row: %w", err)
		}
	}

	return Result{Inserted: len(inserts), Updated: len(updates)}, nil
}

// RelationKey identifies one owner/target pair of a relation table.
type RelationKey struct {
	OwnerID  uuid.UUID
	TargetID uuid.UUID
}

// ReconcileRelations inserts the relation rows in want that are absent from
// the persisted set. Existing relations are never updated or removed, so
// the relation set only ever grows.
func ReconcileRelations[M any](tx *gorm.DB, want []M, keyOf func(*M) RelationKey) (Result, error) {
	var existing []M
	if err := tx.Find(&existing).Error; err != nil {
		return Result{}, fmt.Errorf("failed to load existing relations: %w", err)
	}

	have := make(map[RelationKey]bool, len(existing))
	for i := range existing {
		have[keyOf(&existing[i])] = true
	}

	var inserts []M
	for i := range want {
		key := keyOf(&want[i])
		if !have[key] {
			inserts = append(inserts, want[i])
			have[key] = true
		}
	}

	if len(inserts) > 0 {
		if err := tx.Create(&inserts).Error; err != nil {
			return Result{}, fmt.Errorf("failed to insert relation batch: %w", err)
		}
	}

	return Result{Inserted: len(inserts)}, nil
}

// newBaseModel builds the shared persistence fields for a fresh row
func newBaseModel() models.BaseModel {
	now := time.Now()
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// tableIsEmpty is the existence gate for write-once seeders
func tableIsEmpty(tx *gorm.DB, model any) (bool, error) {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count existing rows: %w", err)
	}
	return count == 0, nil
}

// loadIDsByCode maps every persisted row's natural code to its surrogate id
func loadIDsByCode(tx *gorm.DB, model any) (map[string]uuid.UUID, error) {
	var rows []struct {
		ID   uuid.UUID
		Code string
	}
	if err := tx.Model(model).Select("id", "code").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ids: %w", err)
	}
	ids := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		ids[row.Code] = row.ID
	}
	return ids, nil
}

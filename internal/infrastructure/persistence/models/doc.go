// Package models contains GORM persistence models for the reference-data
// entities. Models carry the schema mapping (natural-key unique indexes,
// column types) and convert to/from the domain types; the seeding engine
// reconciles catalog entries against these models inside per-seeder
// transactions.
package models

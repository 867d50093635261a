// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles query execution, mapping between domain entities and rows, and
// translating driver errors into store sentinel errors via MapError.
//
// The schema lives in the embedded migrations directory and is applied with
// goose through Migrate.
package postgres

// Package database opens the local SQLite database and brings its schema up
// to date with the embedded goose migrations.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/dmitrijs2005/debtbook/internal/database/migrations"
	"github.com/dmitrijs2005/debtbook/internal/filex"
)

// MemoryDSN opens a private in-memory database. Useful in tests.
const MemoryDSN = ":memory:"

// RunMigrations applies all pending migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens the database at dsn, creating the parent directory of a
// file path when needed, and runs migrations.
//
// The pool is limited to one connection: SQLite allows a single writer, and an
// in-memory database lives only as long as its connection.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != MemoryDSN {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

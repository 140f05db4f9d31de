package repository

import (
	"context"
	"errors"

	"depth-chart-backend/internal/database/models"

	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type txKey struct{}

// GormTxManager runs callbacks inside a single database transaction.
// The transaction travels in the context so every repository call made with
// that context joins it.
type GormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// Nested calls reuse the outer transaction.
func (m *GormTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or the base handle scoped to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// activeIn restricts a query to rows of table that have not been soft-deleted.
// Every read path for soft-deletable records goes through this scope.
func activeIn(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".state = ?", models.StateActive)
	}
}

// translate maps unique violations the dialect translator misses onto gorm.ErrDuplicatedKey.
// gorm's sqlite translator only understands mattn errors, not modernc ones.
func translate(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return gorm.ErrDuplicatedKey
	}
	return err
}

const (
	chartsTable      = "depth_charts"
	positionsTable   = "depth_chart_positions"
	assignmentsTable = "depth_chart_players"
	playersTable     = "players"
)

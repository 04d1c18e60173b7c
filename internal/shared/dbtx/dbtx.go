// Package dbtx binds gorm sessions to a *sql.Tx opened by a service, so
// repositories can join the service's transaction.
package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a gorm handle whose statements run on tx.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	txDB := db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
	txDB.Statement.ConnPool = tx
	return txDB
}

// ReadOnly is used by status views and gate checks.
var ReadOnly = &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead}

// RunInTx runs fn in a transaction, committing on nil and rolling back otherwise.
func RunInTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

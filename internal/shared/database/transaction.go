package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNilTransactionFunc is returned when no work is passed to a transaction helper
var ErrNilTransactionFunc = errors.New("database: transaction function is nil")

// WithTransaction executes fn within a transaction while propagating context.
// The transaction handle passed to fn already carries ctx; returning an error rolls back.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return repo.Create(ctx, tx, entity)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return ErrNilTransactionFunc
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}

// InTransaction is WithTransaction for work that produces a value.
// The value is only returned when the transaction committed.
//
//	member, err := InTransaction(ctx, db, func(tx *gorm.DB) (*model.Member, error) {
//	    return repo.FindByID(ctx, tx, id)
//	})
func InTransaction[T any](ctx context.Context, db *gorm.DB, fn func(*gorm.DB) (T, error)) (T, error) {
	var result T
	if fn == nil {
		return result, ErrNilTransactionFunc
	}

	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
		value, err := fn(tx)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

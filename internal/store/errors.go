package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
)

// PostgreSQL error codes inspected by the stores
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgDuplicateObject     = "42710"
)

// QueryExecutionError is returned for every failed statement.
// It keeps the statement and its bindings, and unwraps to the driver error.
type QueryExecutionError struct {
	Query  string
	Params []any
	Err    error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("failed to execute query: %v", e.Err)
}

func (e *QueryExecutionError) Unwrap() error {
	return e.Err
}

// IsConstraintViolation reports whether err is a unique or foreign key violation
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrConstraintViolation) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation
	}
	return false
}

func isDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgDuplicateObject
}

// queryError logs a failed statement and wraps it into a QueryExecutionError.
// Constraint violations additionally match domain.ErrConstraintViolation.
func queryError(ctx context.Context, component string, query string, params []any, err error) error {
	qerr := &QueryExecutionError{Query: query, Params: params, Err: err}

	log := logger.FromContext(ctx).Named(component)
	if IsConstraintViolation(err) {
		log.Debug("Constraint violation", zap.String("query", query), zap.Any("params", params), zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, qerr)
	}

	log.Error("Error executing a query", zap.String("query", query), zap.Any("params", params), zap.Error(err))
	return qerr
}

// statementError wraps the error of a finished gorm statement, using its rendered SQL and vars
func statementError(ctx context.Context, component string, tx *gorm.DB, err error) error {
	var (
		query  string
		params []any
	)
	if tx != nil && tx.Statement != nil {
		query = tx.Statement.SQL.String()
		params = tx.Statement.Vars
	}
	return queryError(ctx, component, query, params, err)
}

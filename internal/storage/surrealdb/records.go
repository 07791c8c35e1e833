package surrealdb

import (
	"context"
	"fmt"

	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// getRecord selects table:id, returning interfaces.ErrNotFound when absent.
func getRecord[T any](ctx context.Context, db *surrealdb.DB, table, id string) (*T, error) {
	rec, err := surrealdb.Select[T](ctx, db, surrealmodels.NewRecordID(table, id))
	if err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", table, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%s %q: %w", table, id, interfaces.ErrNotFound)
	}
	return rec, nil
}

// upsertRecord writes the full record at table:id, retrying transient failures.
func upsertRecord[T any](ctx context.Context, db *surrealdb.DB, table, id string, record *T) error {
	sql := "UPSERT type::record($table, $id) CONTENT $record"
	vars := map[string]any{"table": table, "id": id, "record": record}

	var err error
	for attempt := 1; attempt <= maxSaveTries; attempt++ {
		if _, err = surrealdb.Query[[]T](ctx, db, sql, vars); err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to save %s after retries: %w", table, err)
}

// deleteRecord removes table:id. Deleting a missing record is not an error.
func deleteRecord[T any](ctx context.Context, db *surrealdb.DB, table, id string) error {
	if _, err := surrealdb.Delete[T](ctx, db, surrealmodels.NewRecordID(table, id)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", table, err)
	}
	return nil
}

// queryRecords runs a SELECT and returns pointers into the first result set.
func queryRecords[T any](ctx context.Context, db *surrealdb.DB, sql string, vars map[string]any) ([]*T, error) {
	results, err := surrealdb.Query[[]T](ctx, db, sql, vars)
	if err != nil {
		return nil, err
	}

	var out []*T
	if results != nil && len(*results) > 0 {
		for i := range (*results)[0].Result {
			out = append(out, &(*results)[0].Result[i])
		}
	}
	return out, nil
}

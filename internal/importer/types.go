// Package importer implements the bulk-load pipeline: header
// normalization, JSON field coercion, staged COPY loading, cast-and-
// validate insertion and idempotent conflict resolution, sequenced over
// the registered tables in dependency order.
package importer

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
	CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error)
}

// Status is the per-table outcome of a run.
type Status string

const (
	StatusLoaded  Status = "loaded"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// TableResult records what happened to one table during a run.
type TableResult struct {
	Table  string
	Status Status
	// Rows is the number of rows inserted into the target table. Rows
	// already present under the uniqueness key are not counted.
	Rows int64
	Err  error
}

// RunReport summarizes a whole import run.
type RunReport struct {
	RunID  string
	Tables []TableResult
}

// Failed returns the failed table result, if any.
func (r *RunReport) Failed() *TableResult {
	for i := range r.Tables {
		if r.Tables[i].Status == StatusFailed {
			return &r.Tables[i]
		}
	}
	return nil
}

// TableError wraps a table's pipeline failure with the table name so
// the run abort names the offending table.
type TableError struct {
	Table string
	Err   error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("import %s: %v", e.Table, e.Err)
}

func (e *TableError) Unwrap() error { return e.Err }

package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/schema"
)

// StagingTable returns the staging table name for a target table. The
// name is deterministic, so concurrent runs against the same target must
// be externally serialized.
func StagingTable(table string) string {
	return "tmp_" + table
}

// dropStagingSQL builds the idempotent staging drop statement.
func dropStagingSQL(schemaName string, spec schema.TableSpec) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s.%s", schemaName, StagingTable(spec.Name))
}

// createStagingSQL builds DDL for an all-text staging table shaped
// exactly like the spec's column list.
func createStagingSQL(schemaName string, spec schema.TableSpec) string {
	cols := make([]string, len(spec.Columns))
	for i, c := range spec.Columns {
		cols[i] = c + " TEXT"
	}
	return fmt.Sprintf("CREATE TABLE %s.%s (%s)",
		schemaName, StagingTable(spec.Name), strings.Join(cols, ", "))
}

// createStaging drops any pre-existing staging table of the same name
// and creates a fresh one.
func createStaging(ctx context.Context, db DBTX, schemaName string, spec schema.TableSpec) error {
	if _, err := db.Exec(ctx, dropStagingSQL(schemaName, spec)); err != nil {
		return fmt.Errorf("drop staging: %w", err)
	}
	if _, err := db.Exec(ctx, createStagingSQL(schemaName, spec)); err != nil {
		return fmt.Errorf("create staging: %w", err)
	}
	return nil
}

// loadStaging bulk-transfers normalized rows into the staging table via
// the COPY protocol. Field order matches the canonical column list;
// empty cells become NULL, matching CSV COPY semantics, so downstream
// casts never see empty text. No type validation happens here — every
// field is raw text, deferring failure detection to the cast stage.
func loadStaging(ctx context.Context, db DBTX, schemaName string, spec schema.TableSpec, rows [][]string) (int64, error) {
	src := pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		row := rows[i]
		values := make([]any, len(spec.Columns))
		for c := range spec.Columns {
			if c < len(row) && row[c] != "" {
				values[c] = row[c]
			}
		}
		return values, nil
	})

	ident := pgx.Identifier{schemaName, StagingTable(spec.Name)}
	n, err := db.CopyFrom(ctx, ident, spec.Columns, src)
	if err != nil {
		return 0, fmt.Errorf("copy to staging: %w", err)
	}
	if n != int64(len(rows)) {
		return n, fmt.Errorf("copy to staging: copied %d of %d rows", n, len(rows))
	}
	return n, nil
}

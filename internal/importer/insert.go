package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/schema"
)

// castProjection builds the SELECT list for the staging→target insert:
// each column's cast expression, or the raw column when no cast is
// defined.
func castProjection(schemaName string, spec schema.TableSpec) string {
	exprs := make([]string, len(spec.Columns))
	for i, c := range spec.Columns {
		exprs[i] = spec.ExpandCast(c, schemaName)
	}
	return strings.Join(exprs, ", ")
}

// insertSQL builds the single set-based statement that casts and moves
// every staged row into the target table. With upsert enabled, rows
// whose uniqueness key already exists are silently skipped.
func insertSQL(schemaName string, spec schema.TableSpec) string {
	cols := strings.Join(spec.Columns, ", ")
	sql := fmt.Sprintf("INSERT INTO %s.%s (%s) SELECT %s FROM %s.%s",
		schemaName, spec.Name, cols,
		castProjection(schemaName, spec),
		schemaName, StagingTable(spec.Name))

	if spec.Upsert && len(spec.KeyColumns) > 0 {
		sql += fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", strings.Join(spec.KeyColumns, ", "))
	}
	return sql
}

// castInsert executes the insert and returns the number of rows that
// landed in the target table. Any value failing a cast or an enum
// vocabulary check fails the whole statement; nothing is coerced to NULL
// or dropped here.
func castInsert(ctx context.Context, db DBTX, schemaName string, spec schema.TableSpec) (int64, error) {
	tag, err := db.Exec(ctx, insertSQL(schemaName, spec))
	if err != nil {
		return 0, fmt.Errorf("cast insert: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Package schema defines the canonical target tables for the mobility
// datasets and everything needed to load them: column order, header
// aliases, cast expressions, uniqueness keys and source file names.
//
// A TableSpec is the single source of truth for a table's column list.
// The staging table DDL, the COPY column order and the cast projection
// are all derived from Columns, so they can never fall out of step with
// each other.
package schema

import (
	"regexp"
	"strings"
)

// Drop marks a header alias whose column must be discarded entirely
// (e.g. a descriptive name field that is not part of the target schema).
const Drop = ""

// TableSpec describes one target table and how to load it from CSV.
type TableSpec struct {
	// Name is the unqualified target table name.
	Name string

	// File is the source file name expected inside the data directory.
	File string

	// Columns is the canonical, ordered column list. Staging DDL, COPY
	// field order and the insert projection all follow this order.
	Columns []string

	// Aliases maps known alternate header spellings to canonical column
	// names. A value of Drop discards the column. Resolution is
	// many-to-one; if both an alias and its canonical column appear in
	// one file, the canonical column wins.
	Aliases map[string]string

	// Casts maps a column to its cast expression template. Templates use
	// {col} for the staging column reference and {schema} for the schema
	// name. Columns without a template pass through as raw text.
	Casts map[string]string

	// JSONColumns lists columns that must hold valid JSON text and are
	// run through the field coercer before staging.
	JSONColumns []string

	// KeyColumns is the uniqueness key used for conflict resolution.
	KeyColumns []string

	// Upsert enables ON CONFLICT DO NOTHING on KeyColumns, making
	// re-imports of already-loaded data a no-op instead of an error.
	Upsert bool
}

// ExpandCast renders the cast expression for col, or the identity
// projection when no template is defined.
func (s TableSpec) ExpandCast(col, schemaName string) string {
	tmpl, ok := s.Casts[col]
	if !ok {
		return col
	}
	r := strings.NewReplacer("{col}", col, "{schema}", schemaName)
	return r.Replace(tmpl)
}

// HasColumn reports whether col is part of the canonical column list.
func (s TableSpec) HasColumn(col string) bool {
	for _, c := range s.Columns {
		if c == col {
			return true
		}
	}
	return false
}

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ValidIdentifier reports whether s is a safe lowercase SQL identifier.
// Table, column and schema names are interpolated into generated SQL, so
// anything else is rejected by construction.
func ValidIdentifier(s string) bool {
	return identRe.MatchString(s)
}

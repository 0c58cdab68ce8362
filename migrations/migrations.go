// Package migrations embeds the SQL migrations that create the gauteng
// schema: enum types, their validating cast functions, the seven target
// tables and the import_runs audit table.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

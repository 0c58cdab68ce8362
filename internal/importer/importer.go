package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/csvutil"
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/logging"
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/schema"
)

// Importer sequences per-table imports in dependency order. Each table
// runs in its own transaction; a later table's failure never rolls back
// an earlier table's committed rows.
type Importer struct {
	pool       *pgxpool.Pool
	schemaName string
	dataDir    string
	runID      uuid.UUID
	log        *slog.Logger
}

// New creates an importer for the given data directory and target
// schema.
func New(pool *pgxpool.Pool, schemaName, dataDir string) *Importer {
	runID := uuid.New()
	return &Importer{
		pool:       pool,
		schemaName: schemaName,
		dataDir:    dataDir,
		runID:      runID,
		log:        logging.WithRun(runID),
	}
}

// Run performs one import pass over all registered tables, in order.
// Tables whose source file is absent are skipped; the first table
// failure aborts the run. The returned report always reflects the
// tables attempted so far, even when err is non-nil.
func (imp *Importer) Run(ctx context.Context) (*RunReport, error) {
	report := &RunReport{RunID: imp.runID.String()}

	info, err := os.Stat(imp.dataDir)
	if err != nil {
		return report, fmt.Errorf("data directory %s: %w", imp.dataDir, err)
	}
	if !info.IsDir() {
		return report, fmt.Errorf("data directory %s: not a directory", imp.dataDir)
	}

	for _, spec := range schema.Ordered() {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		path := filepath.Join(imp.dataDir, spec.File)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			imp.log.Info("table skipped, source file not found", "table", spec.Name, "file", spec.File)
			report.Tables = append(report.Tables, TableResult{Table: spec.Name, Status: StatusSkipped})
			continue
		}

		imp.log.Info("importing table", "table", spec.Name, "file", spec.File)
		rows, err := imp.importTable(ctx, spec, path)
		if err != nil {
			tErr := &TableError{Table: spec.Name, Err: err}
			report.Tables = append(report.Tables, TableResult{Table: spec.Name, Status: StatusFailed, Err: tErr})
			imp.record(ctx, report)
			return report, tErr
		}

		imp.log.Info("table loaded", "table", spec.Name, "rows", rows)
		report.Tables = append(report.Tables, TableResult{Table: spec.Name, Status: StatusLoaded, Rows: rows})
	}

	imp.record(ctx, report)
	return report, nil
}

// importTable runs the full pipeline for one table: read, normalize,
// coerce, stage, cast-insert. Everything between Begin and Commit is one
// transaction; on any failure it rolls back fully and the staging table
// goes with it. A best-effort drop afterwards covers the committed path
// and any staging table leaked by an earlier crashed run.
func (imp *Importer) importTable(ctx context.Context, spec schema.TableSpec, path string) (rows int64, err error) {
	records, err := csvutil.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("%s: missing header row", spec.File)
	}

	data := Normalize(spec, records[0], records[1:])
	CoerceJSON(spec, data)

	defer func() {
		if _, dropErr := imp.pool.Exec(ctx, dropStagingSQL(imp.schemaName, spec)); dropErr != nil {
			imp.log.Warn("staging cleanup failed", "table", spec.Name, "error", dropErr)
		}
	}()

	tx, err := imp.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op once committed

	if err := createStaging(ctx, tx, imp.schemaName, spec); err != nil {
		return 0, err
	}
	if _, err := loadStaging(ctx, tx, imp.schemaName, spec, data); err != nil {
		return 0, err
	}
	rows, err = castInsert(ctx, tx, imp.schemaName, spec)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx, dropStagingSQL(imp.schemaName, spec)); err != nil {
		return 0, fmt.Errorf("drop staging: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return rows, nil
}

// record writes one import_runs row per attempted table. Auditing is
// best-effort: a failure here is logged and never fails the run.
func (imp *Importer) record(ctx context.Context, report *RunReport) {
	sql := fmt.Sprintf(
		"INSERT INTO %s.import_runs (run_id, table_name, status, rows_loaded, error) VALUES ($1, $2, $3, $4, $5)",
		imp.schemaName)

	for _, t := range report.Tables {
		var errText string
		if t.Err != nil {
			errText = t.Err.Error()
		}
		if _, err := imp.pool.Exec(ctx, sql, imp.runID.String(), t.Table, string(t.Status), t.Rows, errText); err != nil {
			imp.log.Warn("failed to record run result", "table", t.Table, "error", err)
			return
		}
	}
}

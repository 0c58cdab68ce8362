// Package feeder generates synthetic traffic incidents against loaded
// road segments. It writes through the same insert contract as the bulk
// importer — same columns, same ON CONFLICT (incident_id) DO NOTHING key
// — so it can run alongside or after a completed import.
package feeder

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Segment is the slice of a road row the feeder needs to place an
// incident.
type Segment struct {
	ID      string
	FromLat float64
	FromLon float64
	ToLat   float64
	ToLon   float64
}

// Incident is one synthetic incident row.
type Incident struct {
	ID          string
	Timestamp   time.Time
	Type        string
	Severity    int
	Lat         float64
	Lon         float64
	SegmentID   string
	Description string
	Source      string
}

type incidentKind struct {
	name   string
	weight int
	desc   string
}

// incident type vocabulary with generation weights
var incidentTypes = []incidentKind{
	{"accident", 55, "Two-vehicle collision reported by motorists"},
	{"roadwork", 20, "Maintenance crew working on lane resurfacing"},
	{"hazard", 20, "Debris on road, caution advised"},
	{"closure", 5, "Temporary closure due to local event"},
}

// Feeder inserts incident batches on a fixed tick.
type Feeder struct {
	pool       *pgxpool.Pool
	schemaName string
	rng        *rand.Rand
	log        *slog.Logger
}

// New creates a feeder writing into the given schema.
func New(pool *pgxpool.Pool, schemaName string) *Feeder {
	return &Feeder{
		pool:       pool,
		schemaName: schemaName,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		log:        slog.Default(),
	}
}

// LoadSegments fetches all road segments with usable coordinates.
// Returns an error if the roads table is empty — roads must be imported
// before the feeder can run.
func (f *Feeder) LoadSegments(ctx context.Context) ([]Segment, error) {
	sql := fmt.Sprintf(
		`SELECT segment_id, from_lat, from_lon, to_lat, to_lon
		 FROM %s.roads
		 WHERE from_lat IS NOT NULL AND from_lon IS NOT NULL
		   AND to_lat IS NOT NULL AND to_lon IS NOT NULL`,
		f.schemaName)

	rows, err := f.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("load road segments: %w", err)
	}
	defer rows.Close()

	var segments []Segment
	for rows.Next() {
		var s Segment
		if err := rows.Scan(&s.ID, &s.FromLat, &s.FromLon, &s.ToLat, &s.ToLon); err != nil {
			return nil, fmt.Errorf("scan road segment: %w", err)
		}
		segments = append(segments, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("no rows in %s.roads, import roads first", f.schemaName)
	}
	return segments, nil
}

// Run inserts between batchMin and batchMax incidents every tick until
// the context is cancelled.
func (f *Feeder) Run(ctx context.Context, tick time.Duration, batchMin, batchMax int) error {
	segments, err := f.LoadSegments(ctx)
	if err != nil {
		return err
	}
	f.log.Info("feeder started", "segments", len(segments), "tick", tick)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.log.Info("feeder stopped")
			return ctx.Err()
		case <-ticker.C:
			n := batchMin + f.rng.Intn(batchMax-batchMin+1)
			batch := make([]Incident, n)
			for i := range batch {
				batch[i] = f.synthIncident(segments[f.rng.Intn(len(segments))])
			}
			inserted, err := f.Insert(ctx, batch)
			if err != nil {
				return fmt.Errorf("insert incident batch: %w", err)
			}
			f.log.Info("incidents inserted", "count", inserted)
		}
	}
}

// Insert writes a batch of incidents, skipping any whose ID already
// exists. Returns the number of rows actually inserted.
func (f *Feeder) Insert(ctx context.Context, batch []Incident) (int64, error) {
	sql := fmt.Sprintf(
		`INSERT INTO %s.incidents
		   (incident_id, "timestamp", type, severity, lat, lon,
		    affected_segment_id, description, source)
		 VALUES ($1, $2, %s.incident_enum($3), $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (incident_id) DO NOTHING`,
		f.schemaName, f.schemaName)

	var inserted int64
	for _, inc := range batch {
		tag, err := f.pool.Exec(ctx, sql,
			inc.ID, inc.Timestamp, inc.Type, inc.Severity, inc.Lat, inc.Lon,
			inc.SegmentID, inc.Description, inc.Source)
		if err != nil {
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

// synthIncident builds one incident at the midpoint of a segment, with
// a type drawn from the weighted vocabulary.
func (f *Feeder) synthIncident(seg Segment) Incident {
	now := time.Now().UTC()
	t := pickType(f.rng)
	return Incident{
		ID:          incidentID(now, f.rng),
		Timestamp:   now,
		Type:        t.name,
		Severity:    1 + f.rng.Intn(5),
		Lat:         round6((seg.FromLat + seg.ToLat) / 2),
		Lon:         round6((seg.FromLon + seg.ToLon) / 2),
		SegmentID:   seg.ID,
		Description: t.desc,
		Source:      "simulator",
	}
}

func pickType(rng *rand.Rand) incidentKind {
	total := 0
	for _, t := range incidentTypes {
		total += t.weight
	}
	n := rng.Intn(total)
	for _, t := range incidentTypes {
		if n < t.weight {
			return t
		}
		n -= t.weight
	}
	return incidentTypes[0]
}

// incidentID formats IDs like INC-20250101120000-4821.
func incidentID(now time.Time, rng *rand.Rand) string {
	return fmt.Sprintf("INC-%s-%04d", now.Format("20060102150405"), 1000+rng.Intn(9000))
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

package importer

import (
	"strings"
	"testing"

	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/schema"
)

func speedSpec(upsert bool) schema.TableSpec {
	return schema.TableSpec{
		Name:    "historical_speeds",
		Columns: []string{"segment_id", "timestamp", "avg_speed_kph"},
		Casts: map[string]string{
			"timestamp":     "CAST({col} AS TIMESTAMPTZ)",
			"avg_speed_kph": "NULLIF({col}, '')::NUMERIC(6,1)",
		},
		KeyColumns: []string{"segment_id", "timestamp"},
		Upsert:     upsert,
	}
}

func TestStagingTable(t *testing.T) {
	if got := StagingTable("roads"); got != "tmp_roads" {
		t.Errorf("got %q, want tmp_roads", got)
	}
}

func TestCreateStagingSQL_AllTextInColumnOrder(t *testing.T) {
	got := createStagingSQL("gauteng", speedSpec(true))
	want := "CREATE TABLE gauteng.tmp_historical_speeds (segment_id TEXT, timestamp TEXT, avg_speed_kph TEXT)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDropStagingSQL(t *testing.T) {
	got := dropStagingSQL("gauteng", speedSpec(true))
	want := "DROP TABLE IF EXISTS gauteng.tmp_historical_speeds"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCastProjection_IdentityWithoutCast(t *testing.T) {
	got := castProjection("gauteng", speedSpec(true))
	want := "segment_id, CAST(timestamp AS TIMESTAMPTZ), NULLIF(avg_speed_kph, '')::NUMERIC(6,1)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInsertSQL_UpsertAppendsConflictClause(t *testing.T) {
	got := insertSQL("gauteng", speedSpec(true))
	want := "INSERT INTO gauteng.historical_speeds (segment_id, timestamp, avg_speed_kph) " +
		"SELECT segment_id, CAST(timestamp AS TIMESTAMPTZ), NULLIF(avg_speed_kph, '')::NUMERIC(6,1) " +
		"FROM gauteng.tmp_historical_speeds " +
		"ON CONFLICT (segment_id, timestamp) DO NOTHING"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestInsertSQL_NoUpsertNoConflictClause(t *testing.T) {
	got := insertSQL("gauteng", speedSpec(false))
	if strings.Contains(got, "ON CONFLICT") {
		t.Errorf("append-only insert must not carry a conflict clause: %q", got)
	}
}

func TestInsertSQL_EnumLookupIsSchemaQualified(t *testing.T) {
	spec, ok := schema.Get("roads")
	if !ok {
		t.Fatal("roads spec not registered")
	}

	got := insertSQL("mobility", spec)
	if !strings.Contains(got, "mobility.road_enum(road_type)") {
		t.Errorf("expected schema-qualified enum lookup, got %q", got)
	}
}

package schema

import (
	"strings"
	"testing"
)

func validSpec() TableSpec {
	return TableSpec{
		Name:       "stations",
		Columns:    []string{"station_id", "lat"},
		KeyColumns: []string{"station_id"},
		Upsert:     true,
	}
}

func TestCheck_Valid(t *testing.T) {
	if err := check(validSpec()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheck_RejectsMalformedSpecs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TableSpec)
		wantErr string
	}{
		{"unsafe table name", func(s *TableSpec) { s.Name = "stations; DROP" }, "unsafe table name"},
		{"no columns", func(s *TableSpec) { s.Columns = nil }, "no columns"},
		{"unsafe column", func(s *TableSpec) { s.Columns = []string{"lat", `x"y`} }, "unsafe column"},
		{"duplicate column", func(s *TableSpec) { s.Columns = []string{"lat", "lat"}; s.KeyColumns = []string{"lat"} }, "duplicate column"},
		{"alias to unknown", func(s *TableSpec) { s.Aliases = map[string]string{"x": "nope"} }, "unknown column"},
		{"cast for unknown", func(s *TableSpec) { s.Casts = map[string]string{"nope": "{col}"} }, "unknown column"},
		{"json for unknown", func(s *TableSpec) { s.JSONColumns = []string{"nope"} }, "unknown column"},
		{"upsert without keys", func(s *TableSpec) { s.KeyColumns = nil }, "without key columns"},
		{"key not in columns", func(s *TableSpec) { s.KeyColumns = []string{"nope"} }, "not in column list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			err := check(spec)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheck_DropAliasAllowed(t *testing.T) {
	spec := validSpec()
	spec.Aliases = map[string]string{"station_name": Drop}
	if err := check(spec); err != nil {
		t.Errorf("drop alias should be valid: %v", err)
	}
}

func TestExpandCast(t *testing.T) {
	spec := TableSpec{
		Columns: []string{"road_type", "lanes"},
		Casts: map[string]string{
			"road_type": "{schema}.road_enum({col})",
		},
	}

	if got := spec.ExpandCast("road_type", "gauteng"); got != "gauteng.road_enum(road_type)" {
		t.Errorf("got %q", got)
	}
	// no template: identity
	if got := spec.ExpandCast("lanes", "gauteng"); got != "lanes" {
		t.Errorf("got %q", got)
	}
}

func TestValidIdentifier(t *testing.T) {
	valid := []string{"roads", "tmp_roads", "segment_id", "_x", "timestamp"}
	for _, s := range valid {
		if !ValidIdentifier(s) {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []string{"", "Roads", "1roads", "a-b", "a.b", `a"b`, "a b", "a;b"}
	for _, s := range invalid {
		if ValidIdentifier(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

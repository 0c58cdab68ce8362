package importer

import (
	"reflect"
	"testing"

	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/schema"
)

func TestEnsureJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "[]"},
		{"   ", "[]"},
		{"A,B,C", `["A","B","C"]`},
		{" A , B ", `["A","B"]`},
		{"S-1001", `["S-1001"]`},
		{`["X"]`, `["X"]`},
		{`[]`, `[]`},
		{`{"k":1}`, `{"k":1}`},
		{` ["X","Y"] `, `["X","Y"]`},
		{",,", "[]"},
	}

	for _, tt := range tests {
		if got := EnsureJSON(tt.in); got != tt.want {
			t.Errorf("EnsureJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCoerceJSON_RewritesOnlyJSONColumns(t *testing.T) {
	spec := schema.TableSpec{
		Name:        "assignments",
		Columns:     []string{"assignment_id", "route_segments", "reason"},
		JSONColumns: []string{"route_segments"},
	}
	rows := [][]string{
		{"A1", "S1,S2", "on time"},
		{"A2", "", ""},
		{"A3", `["S9"]`, "rerouted"},
	}

	CoerceJSON(spec, rows)

	want := [][]string{
		{"A1", `["S1","S2"]`, "on time"},
		{"A2", "[]", ""},
		{"A3", `["S9"]`, "rerouted"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("got %v, want %v", rows, want)
	}
}

func TestCoerceJSON_NoJSONColumnsIsNoop(t *testing.T) {
	spec := schema.TableSpec{
		Name:    "roads",
		Columns: []string{"segment_id"},
	}
	rows := [][]string{{"S1,S2"}}

	CoerceJSON(spec, rows)

	if rows[0][0] != "S1,S2" {
		t.Errorf("rows changed without JSON columns: %v", rows)
	}
}

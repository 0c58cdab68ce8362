package importer

import (
	"encoding/json"
	"strings"

	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/schema"
)

// CoerceJSON rewrites the spec's JSON columns in place so every value is
// valid JSON text before staging. Rows must already be in canonical
// column order. The target column is typed JSONB and upstream extracts
// are inconsistent: sometimes JSON, sometimes a bare comma-joined
// string, sometimes empty.
func CoerceJSON(spec schema.TableSpec, rows [][]string) {
	for _, col := range spec.JSONColumns {
		idx := -1
		for i, c := range spec.Columns {
			if c == col {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		for _, row := range rows {
			row[idx] = EnsureJSON(row[idx])
		}
	}
}

// EnsureJSON maps a raw cell value to JSON text:
//
//	""            -> "[]"
//	"[...]"/"{...}" -> unchanged
//	"A,B,C"       -> `["A","B","C"]`
func EnsureJSON(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return "[]"
	}
	if (strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")) ||
		(strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) {
		return s
	}

	var tokens []string
	for _, tok := range strings.Split(s, ",") {
		if t := strings.TrimSpace(tok); t != "" {
			tokens = append(tokens, t)
		}
	}
	if tokens == nil {
		tokens = []string{}
	}
	b, err := json.Marshal(tokens)
	if err != nil {
		// a []string cannot fail to marshal
		return "[]"
	}
	return string(b)
}

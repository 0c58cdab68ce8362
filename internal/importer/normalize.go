package importer

import (
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/csvutil"
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/schema"
)

// Normalize reconciles a raw header row against the spec's canonical
// column list and returns the data rows renamed, reordered and filled to
// exactly that list:
//
//   - headers matching an alias are renamed to their canonical column;
//     aliases mapped to schema.Drop are discarded
//   - headers outside the canonical list are discarded
//   - canonical columns absent from the source are synthesized with
//     empty values
//   - output column order is the canonical order
//
// If both an alias and its canonical column appear in one file, the
// canonical column wins and the aliased one is dropped. Normalization is
// total: any header set produces a valid result. The input is not
// mutated.
func Normalize(spec schema.TableSpec, header []string, rows [][]string) [][]string {
	// source index for each canonical column, -1 when absent
	srcIdx := make(map[string]int, len(spec.Columns))
	for _, c := range spec.Columns {
		srcIdx[c] = -1
	}
	// canonical headers claim their column first
	for i, h := range header {
		name := csvutil.CleanHeader(h)
		if _, ok := srcIdx[name]; ok && srcIdx[name] == -1 {
			srcIdx[name] = i
		}
	}
	// aliases fill the remaining gaps
	for i, h := range header {
		name := csvutil.CleanHeader(h)
		if _, canonical := srcIdx[name]; canonical {
			continue
		}
		target, ok := spec.Aliases[name]
		if !ok || target == schema.Drop {
			continue
		}
		if srcIdx[target] == -1 {
			srcIdx[target] = i
		}
	}

	out := make([][]string, len(rows))
	for r, row := range rows {
		rec := make([]string, len(spec.Columns))
		for c, col := range spec.Columns {
			if i := srcIdx[col]; i >= 0 && i < len(row) {
				rec[c] = row[i]
			}
		}
		out[r] = rec
	}
	return out
}

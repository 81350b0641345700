package dataframe

// LeftJoin merges right into left on the named key column, preserving every
// left row exactly once. Unmatched rows keep empty right-side fields. When
// the right table carries duplicate key values the first occurrence wins,
// so the result's cardinality always equals the left table's. Right columns
// whose names collide with left columns are skipped; the key itself is
// emitted once, from the left side.
//
// Both tables must contain the key column; callers gate on HasColumn.
func LeftJoin(left, right *Table, key string) *Table {
	var extraCols []string
	var extraIdx []int
	for i, name := range right.columns {
		if name == key || left.HasColumn(name) {
			continue
		}
		extraCols = append(extraCols, name)
		extraIdx = append(extraIdx, i)
	}

	// First right row per key value
	rightKey := right.ColumnIndex(key)
	lookup := make(map[string][]string, right.NumRows())
	for _, row := range right.rows {
		k := row[rightKey]
		if _, seen := lookup[k]; !seen {
			lookup[k] = row
		}
	}

	merged := New(append(left.Columns(), extraCols...))
	leftKey := left.ColumnIndex(key)
	for _, row := range left.rows {
		out := make([]string, 0, merged.NumCols())
		out = append(out, row...)
		if match, ok := lookup[row[leftKey]]; ok {
			for _, i := range extraIdx {
				out = append(out, match[i])
			}
		}
		merged.Append(out)
	}

	return merged
}

// SPDX-License-Identifier: MIT
// Package: subiso

package subiso

import (
	"fmt"
	"sort"
	"strings"
)

// Table is a row-major matrix of matches: Data[i*Cols+j] is the target
// vertex matched to pattern vertex j in the i-th match. Row order is
// unspecified. The zero Table means "no matches".
type Table struct {
	Rows int
	Cols int
	Data []int
}

// IsEmpty reports whether the table holds no rows.
func (t Table) IsEmpty() bool { return t.Rows == 0 }

// Row returns row i as a sub-slice of Data. Must not be modified.
func (t Table) Row(i int) []int { return t.Data[i*t.Cols : (i+1)*t.Cols] }

// At returns the target vertex matched to pattern vertex j in row i.
func (t Table) At(i, j int) int { return t.Data[i*t.Cols+j] }

// RowSlices copies the table into one slice per row.
func (t Table) RowSlices() [][]int {
	out := make([][]int, t.Rows)
	for i := range out {
		out[i] = append([]int(nil), t.Row(i)...)
	}

	return out
}

// Sorted returns a copy with rows in lexicographic order.
func (t Table) Sorted() Table {
	rows := t.RowSlices()
	sort.Slice(rows, func(a, b int) bool {
		ra, rb := rows[a], rows[b]
		for k := range ra {
			if ra[k] != rb[k] {
				return ra[k] < rb[k]
			}
		}

		return false
	})
	out := Table{Rows: t.Rows, Cols: t.Cols, Data: make([]int, 0, len(t.Data))}
	for _, r := range rows {
		out.Data = append(out.Data, r...)
	}
	if out.Rows == 0 {
		out.Data = nil
	}

	return out
}

// String renders one row per line, space separated.
func (t Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.Rows; i++ {
		for j, v := range t.Row(i) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

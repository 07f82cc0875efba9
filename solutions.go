// SPDX-License-Identifier: MIT
// Package: subiso
//
// solutions.go — per-engine collector of complete embeddings.
//
// Ownership:
//   - add takes the caller's row; the caller's slice header is cleared.
//   - append moves every row of other and leaves other empty.
//   - Rows are in search order until exportTable remaps them.

package subiso

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// exportBlockRows is the number of rows one export task permutes.
const exportBlockRows = 64

type solutions struct {
	rows [][]int
}

func (s *solutions) len() int { return len(s.rows) }

func (s *solutions) add(row *[]int) {
	s.rows = append(s.rows, *row)
	*row = nil
}

func (s *solutions) append(other *solutions) {
	if other == nil || len(other.rows) == 0 {
		return
	}
	s.rows = append(s.rows, other.rows...)
	other.rows = nil
}

// exportTable permutes every row from search order into pattern-id column
// order and packs them into one row-major buffer, keeping at most
// maxMatchCount rows (0 = all). Blocks of exportBlockRows rows are
// permuted concurrently.
func (s *solutions) exportTable(sorted []int, maxMatchCount int) Table {
	rows := len(s.rows)
	if maxMatchCount > 0 && rows > maxMatchCount {
		rows = maxMatchCount
	}
	cols := len(sorted)
	if rows == 0 || cols == 0 {
		return Table{}
	}

	// levelOf[p] is the depth at which pattern vertex p was placed.
	levelOf := make([]int, cols)
	for level, p := range sorted {
		levelOf[p] = level
	}

	data := make([]int, rows*cols)
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < rows; start += exportBlockRows {
		end := min(start+exportBlockRows, rows)
		eg.Go(func() error {
			for r := start; r < end; r++ {
				src := s.rows[r]
				dst := data[r*cols : (r+1)*cols]
				for p := range dst {
					dst[p] = src[levelOf[p]]
				}
			}

			return nil
		})
	}
	// Tasks only copy ints and never fail.
	_ = eg.Wait()

	return Table{Rows: rows, Cols: cols, Data: data}
}

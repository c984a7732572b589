// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package similarity

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotSquare is returned when the table is not N x N.
	ErrNotSquare = errors.New("similarity table is not square")

	// ErrIndexOutOfRange is returned for a row index outside [0, N).
	ErrIndexOutOfRange = errors.New("similarity index out of range")

	// ErrInvalidK is returned for a negative neighbor count.
	ErrInvalidK = errors.New("neighbor count must not be negative")
)

// Neighbor is a catalog position and its similarity to the query row.
type Neighbor struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// Index is an immutable N x N similarity table.
type Index struct {
	rows [][]float64
}

// NewIndex validates and wraps rows. The rows are used as-is and must not be
// mutated by the caller afterwards.
func NewIndex(rows [][]float64) (*Index, error) {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
	}
	return &Index{rows: rows}, nil
}

// Len returns N.
func (x *Index) Len() int {
	return len(x.rows)
}

// Score returns the similarity between rows i and j.
func (x *Index) Score(i, j int) (float64, error) {
	n := len(x.rows)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("%w: (%d, %d) size %d", ErrIndexOutOfRange, i, j, n)
	}
	return x.rows[i][j], nil
}

// NeighborsOf returns up to k neighbors of row index, most similar first.
//
// Row index is ranked against every column with a stable descending sort, so
// equal scores keep ascending column order. The first ranked entry is dropped
// as the self match, even when another column ties or beats the diagonal. At
// most N-1 neighbors are returned.
func (x *Index) NeighborsOf(index, k int) ([]Neighbor, error) {
	n := len(x.rows)
	if index < 0 || index >= n {
		return nil, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, n)
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}

	row := x.rows[index]
	ranked := make([]Neighbor, n)
	for j, s := range row {
		ranked[j] = Neighbor{Index: j, Score: s}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	ranked = ranked[1:]
	if k < len(ranked) {
		ranked = ranked[:k]
	}

	out := make([]Neighbor, len(ranked))
	copy(out, ranked)
	return out, nil
}

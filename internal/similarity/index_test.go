// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package similarity

import (
	"errors"
	"testing"
)

// sixByGrid is a 6x6 table over titles A..F where row 0 ranks F,B,D,E,C.
func sixByGrid() [][]float64 {
	return [][]float64{
		{1.0, 0.9, 0.1, 0.5, 0.3, 0.95},
		{0.9, 1.0, 0.2, 0.4, 0.1, 0.3},
		{0.1, 0.2, 1.0, 0.6, 0.7, 0.2},
		{0.5, 0.4, 0.6, 1.0, 0.8, 0.1},
		{0.3, 0.1, 0.7, 0.8, 1.0, 0.05},
		{0.95, 0.3, 0.2, 0.1, 0.05, 1.0},
	}
}

func indices(ns []Neighbor) []int {
	out := make([]int, len(ns))
	for i, n := range ns {
		out[i] = n.Index
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNeighborsOf_Order(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex(sixByGrid())
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	got, err := idx.NeighborsOf(0, 5)
	if err != nil {
		t.Fatalf("NeighborsOf() error = %v", err)
	}

	want := []int{5, 1, 3, 4, 2}
	if !equalInts(indices(got), want) {
		t.Errorf("NeighborsOf(0, 5) = %v, want %v", indices(got), want)
	}
	if got[0].Score != 0.95 {
		t.Errorf("first score = %v, want 0.95", got[0].Score)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores not descending at %d: %v > %v", i, got[i].Score, got[i-1].Score)
		}
	}
}

func TestNeighborsOf_TiesKeepAscendingIndex(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{1, 0.5, 0.5, 0.5},
		{0.5, 1, 0, 0},
		{0.5, 0, 1, 0},
		{0.5, 0, 0, 1},
	}
	idx, err := NewIndex(rows)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	got, err := idx.NeighborsOf(0, 3)
	if err != nil {
		t.Fatalf("NeighborsOf() error = %v", err)
	}
	if want := []int{1, 2, 3}; !equalInts(indices(got), want) {
		t.Errorf("NeighborsOf(0, 3) = %v, want %v", indices(got), want)
	}
}

func TestNeighborsOf_DropsFirstRankedNotDiagonal(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{1, 1, 0.2},
		{1, 1, 0.3},
		{0.2, 0.3, 1},
	}
	idx, err := NewIndex(rows)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	got, err := idx.NeighborsOf(1, 2)
	if err != nil {
		t.Fatalf("NeighborsOf() error = %v", err)
	}
	// Row 1 ranks columns 0,1 (tied at 1) then 2. Column 0 is dropped as "self".
	if want := []int{1, 2}; !equalInts(indices(got), want) {
		t.Errorf("NeighborsOf(1, 2) = %v, want %v", indices(got), want)
	}
}

func TestNeighborsOf_KCappedAtNMinusOne(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{1, 0.2, 0.8},
		{0.2, 1, 0.4},
		{0.8, 0.4, 1},
	}
	idx, err := NewIndex(rows)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	got, err := idx.NeighborsOf(0, 5)
	if err != nil {
		t.Fatalf("NeighborsOf() error = %v", err)
	}
	if want := []int{2, 1}; !equalInts(indices(got), want) {
		t.Errorf("NeighborsOf(0, 5) = %v, want %v", indices(got), want)
	}
}

func TestNeighborsOf_SingleEntry(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex([][]float64{{1}})
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	got, err := idx.NeighborsOf(0, 5)
	if err != nil {
		t.Fatalf("NeighborsOf() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("NeighborsOf on 1x1 = %v, want empty", got)
	}
}

func TestNeighborsOf_Errors(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex(sixByGrid())
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	tests := []struct {
		name  string
		index int
		k     int
		want  error
	}{
		{"negative index", -1, 5, ErrIndexOutOfRange},
		{"index past end", 6, 5, ErrIndexOutOfRange},
		{"negative k", 0, -1, ErrInvalidK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := idx.NeighborsOf(tt.index, tt.k); !errors.Is(err, tt.want) {
				t.Errorf("NeighborsOf(%d, %d) error = %v, want %v", tt.index, tt.k, err, tt.want)
			}
		})
	}
}

func TestNeighborsOf_ZeroK(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex(sixByGrid())
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	got, err := idx.NeighborsOf(2, 0)
	if err != nil {
		t.Fatalf("NeighborsOf() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("NeighborsOf(2, 0) = %v, want empty", got)
	}
}

func TestNewIndex_RejectsNonSquare(t *testing.T) {
	t.Parallel()

	_, err := NewIndex([][]float64{{1, 0}, {0}})
	if !errors.Is(err, ErrNotSquare) {
		t.Errorf("NewIndex() error = %v, want ErrNotSquare", err)
	}

	_, err = NewIndex([][]float64{{1, 0, 0}, {0, 1, 0}})
	if !errors.Is(err, ErrNotSquare) {
		t.Errorf("NewIndex(2x3) error = %v, want ErrNotSquare", err)
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex(sixByGrid())
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	s, err := idx.Score(3, 4)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if s != 0.8 {
		t.Errorf("Score(3, 4) = %v, want 0.8", s)
	}

	if _, err := idx.Score(0, 9); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Score(0, 9) error = %v, want ErrIndexOutOfRange", err)
	}
	if idx.Len() != 6 {
		t.Errorf("Len() = %d, want 6", idx.Len())
	}
}

func TestNeighborsOf_ResultIsCopy(t *testing.T) {
	t.Parallel()

	idx, err := NewIndex(sixByGrid())
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	first, _ := idx.NeighborsOf(0, 2)
	first[0].Index = 99

	second, _ := idx.NeighborsOf(0, 2)
	if second[0].Index != 5 {
		t.Errorf("mutating a result leaked into later queries: got %d", second[0].Index)
	}
}

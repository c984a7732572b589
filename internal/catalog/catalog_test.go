// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package catalog

import (
	"errors"
	"testing"
)

func TestIndexOf(t *testing.T) {
	t.Parallel()

	c := New([]string{"Avatar", "Titanic", "Inception"})

	tests := []struct {
		name    string
		title   string
		want    int
		wantErr error
	}{
		{"first", "Avatar", 0, nil},
		{"last", "Inception", 2, nil},
		{"missing", "Up", -1, ErrNotFound},
		{"case sensitive", "avatar", -1, ErrNotFound},
		{"empty", "", -1, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := c.IndexOf(tt.title)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("IndexOf(%q) error = %v, want %v", tt.title, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("IndexOf(%q) = %d, want %d", tt.title, got, tt.want)
			}
		})
	}
}

func TestIndexOf_DuplicateResolvesToFirst(t *testing.T) {
	t.Parallel()

	c := New([]string{"Heat", "Alien", "Heat"})

	got, err := c.IndexOf("Heat")
	if err != nil {
		t.Fatalf("IndexOf() error = %v", err)
	}
	if got != 0 {
		t.Errorf("IndexOf(Heat) = %d, want 0", got)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestTitleAt(t *testing.T) {
	t.Parallel()

	c := New([]string{"Avatar", "Titanic"})

	title, err := c.TitleAt(1)
	if err != nil {
		t.Fatalf("TitleAt(1) error = %v", err)
	}
	if title != "Titanic" {
		t.Errorf("TitleAt(1) = %q, want Titanic", title)
	}

	for _, i := range []int{-1, 2, 100} {
		if _, err := c.TitleAt(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("TitleAt(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestAllTitles_OrderAndCopy(t *testing.T) {
	t.Parallel()

	in := []string{"C", "A", "B"}
	c := New(in)

	got := c.AllTitles()
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("AllTitles()[%d] = %q, want %q", i, got[i], in[i])
		}
	}

	got[0] = "mutated"
	if again := c.AllTitles(); again[0] != "C" {
		t.Errorf("AllTitles() returned shared storage, got %q", again[0])
	}

	entries := c.Entries()
	if entries[2].Index != 2 || entries[2].Title != "B" {
		t.Errorf("Entries()[2] = %+v, want {2 B}", entries[2])
	}
}

func TestEmptyCatalog(t *testing.T) {
	t.Parallel()

	c := New(nil)
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if len(c.AllTitles()) != 0 {
		t.Error("AllTitles() should be empty")
	}
	if c.Contains("x") {
		t.Error("Contains() on empty catalog should be false")
	}
}

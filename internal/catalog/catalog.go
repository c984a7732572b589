// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a title is not present in the catalog.
	ErrNotFound = errors.New("title not found in catalog")

	// ErrIndexOutOfRange is returned when an index does not address an entry.
	ErrIndexOutOfRange = errors.New("catalog index out of range")

	// ErrEmptyCatalog is returned when an operation needs at least one entry.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// Entry is a single catalog title and its stable position.
type Entry struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

// Catalog is the ordered list of known titles plus a title -> index lookup.
type Catalog struct {
	entries []Entry
	byTitle map[string]int
}

// New builds a catalog from titles in artifact order.
// When a title repeats, lookups resolve to its first occurrence.
func New(titles []string) *Catalog {
	c := &Catalog{
		entries: make([]Entry, len(titles)),
		byTitle: make(map[string]int, len(titles)),
	}

	for i, title := range titles {
		c.entries[i] = Entry{Index: i, Title: title}
		if _, seen := c.byTitle[title]; !seen {
			c.byTitle[title] = i
		}
	}

	return c
}

// IndexOf returns the index of the first entry whose title matches exactly.
func (c *Catalog) IndexOf(title string) (int, error) {
	idx, ok := c.byTitle[title]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return idx, nil
}

// TitleAt returns the title stored at index.
func (c *Catalog) TitleAt(index int) (string, error) {
	if index < 0 || index >= len(c.entries) {
		return "", fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(c.entries))
	}
	return c.entries[index].Title, nil
}

// AllTitles returns every title in catalog order.
// The returned slice is a copy and may be modified by the caller.
func (c *Catalog) AllTitles() []string {
	titles := make([]string, len(c.entries))
	for i, e := range c.entries {
		titles[i] = e.Title
	}
	return titles
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Contains reports whether the title is present.
func (c *Catalog) Contains(title string) bool {
	_, ok := c.byTitle[title]
	return ok
}

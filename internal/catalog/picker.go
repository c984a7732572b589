// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package catalog

import (
	"math/rand"
	"sync"
	"time"
)

// Picker selects uniformly random titles from a catalog.
// It is safe for concurrent use.
type Picker struct {
	catalog *Catalog

	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewPicker creates a picker seeded from the current time.
// Picks are intentionally non-deterministic across process runs.
func NewPicker(c *Catalog) *Picker {
	return NewPickerWithSource(c, rand.NewSource(time.Now().UnixNano()))
}

// NewPickerWithSource creates a picker using the given random source.
func NewPickerWithSource(c *Catalog, src rand.Source) *Picker {
	return &Picker{
		catalog: c,
		rng:     rand.New(src), //nolint:gosec // math/rand is fine for a "surprise me" pick
	}
}

// PickRandom returns a uniformly random catalog title.
func (p *Picker) PickRandom() (string, error) {
	n := p.catalog.Len()
	if n == 0 {
		return "", ErrEmptyCatalog
	}

	p.rngMu.Lock()
	i := p.rng.Intn(n)
	p.rngMu.Unlock()

	return p.catalog.entries[i].Title, nil
}

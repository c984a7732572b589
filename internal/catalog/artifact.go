// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package catalog

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movieverse/internal/similarity"
)

// ErrArtifactMismatch is returned when the titles and similarity table disagree in size.
var ErrArtifactMismatch = errors.New("catalog and similarity table sizes differ")

// Artifact is the precomputed catalog plus its similarity index.
type Artifact struct {
	Catalog *Catalog
	Index   *similarity.Index
}

// artifactFile is the on-disk shape of a combined artifact.
type artifactFile struct {
	Titles     titleList   `json:"titles"`
	Similarity [][]float64 `json:"similarity"`
}

// titleList accepts either ["A","B"] or [{"title":"A"},{"title":"B"}].
type titleList []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *titleList) UnmarshalJSON(data []byte) error {
	var plain []string
	if err := json.Unmarshal(data, &plain); err == nil {
		*t = plain
		return nil
	}

	var objects []struct {
		Title *string `json:"title"`
	}
	if err := json.Unmarshal(data, &objects); err != nil {
		return fmt.Errorf("titles must be an array of strings or {\"title\": ...} objects: %w", err)
	}

	out := make([]string, len(objects))
	for i, o := range objects {
		if o.Title == nil {
			return fmt.Errorf("titles[%d]: missing title field", i)
		}
		out[i] = *o.Title
	}
	*t = out
	return nil
}

// LoadArtifact reads a combined {"titles": [...], "similarity": [[...]]} file.
// Paths ending in .gz are decompressed transparently.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := readMaybeGzip(path)
	if err != nil {
		return nil, err
	}

	var raw artifactFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", path, err)
	}

	return buildArtifact(raw.Titles, raw.Similarity)
}

// LoadArtifactParts reads the titles and the similarity table from separate files.
// The titles file holds a JSON array; the similarity file holds a JSON array of rows.
func LoadArtifactParts(titlesPath, similarityPath string) (*Artifact, error) {
	titleData, err := readMaybeGzip(titlesPath)
	if err != nil {
		return nil, err
	}
	var titles titleList
	if err := json.Unmarshal(titleData, &titles); err != nil {
		return nil, fmt.Errorf("decode titles %s: %w", titlesPath, err)
	}

	simData, err := readMaybeGzip(similarityPath)
	if err != nil {
		return nil, err
	}
	var rows [][]float64
	if err := json.Unmarshal(simData, &rows); err != nil {
		return nil, fmt.Errorf("decode similarity %s: %w", similarityPath, err)
	}

	return buildArtifact(titles, rows)
}

// NewArtifact builds an artifact from in-memory data.
func NewArtifact(titles []string, rows [][]float64) (*Artifact, error) {
	return buildArtifact(titles, rows)
}

func buildArtifact(titles []string, rows [][]float64) (*Artifact, error) {
	if len(titles) != len(rows) {
		return nil, fmt.Errorf("%w: %d titles, %d similarity rows", ErrArtifactMismatch, len(titles), len(rows))
	}

	idx, err := similarity.NewIndex(rows)
	if err != nil {
		return nil, fmt.Errorf("build similarity index: %w", err)
	}

	return &Artifact{
		Catalog: New(titles),
		Index:   idx,
	}, nil
}

// readMaybeGzip reads a whole file, gunzipping it when the name ends in .gz.
func readMaybeGzip(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !strings.HasSuffix(path, ".gz") {
		return data, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip %s: %w", path, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	return out, nil
}

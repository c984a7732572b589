// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package catalog

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/movieverse/internal/similarity"
)

const combinedArtifact = `{
  "titles": ["Avatar", "Titanic", "Aliens"],
  "similarity": [[1, 0.2, 0.7], [0.2, 1, 0.1], [0.7, 0.1, 1]]
}`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadArtifact(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "artifact.json", combinedArtifact)

	a, err := LoadArtifact(path)
	if err != nil {
		t.Fatalf("LoadArtifact() error = %v", err)
	}
	if a.Catalog.Len() != 3 || a.Index.Len() != 3 {
		t.Fatalf("sizes = %d/%d, want 3/3", a.Catalog.Len(), a.Index.Len())
	}

	n, err := a.Index.NeighborsOf(0, 5)
	if err != nil {
		t.Fatalf("NeighborsOf() error = %v", err)
	}
	if len(n) != 2 || n[0].Index != 2 {
		t.Errorf("NeighborsOf(0) = %+v, want Aliens first", n)
	}
}

func TestLoadArtifact_Gzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "artifact.json.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(combinedArtifact)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	a, err := LoadArtifact(path)
	if err != nil {
		t.Fatalf("LoadArtifact() error = %v", err)
	}
	if title, _ := a.Catalog.TitleAt(1); title != "Titanic" {
		t.Errorf("TitleAt(1) = %q, want Titanic", title)
	}
}

func TestLoadArtifact_TitleObjects(t *testing.T) {
	t.Parallel()

	body := `{"titles":[{"title":"A","movie_id":1},{"title":"B","movie_id":2}],"similarity":[[1,0.5],[0.5,1]]}`
	path := writeFile(t, t.TempDir(), "artifact.json", body)

	a, err := LoadArtifact(path)
	if err != nil {
		t.Fatalf("LoadArtifact() error = %v", err)
	}
	if got := a.Catalog.AllTitles(); got[0] != "A" || got[1] != "B" {
		t.Errorf("AllTitles() = %v, want [A B]", got)
	}
}

func TestLoadArtifactParts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	titles := writeFile(t, dir, "titles.json", `["X","Y"]`)
	sim := writeFile(t, dir, "similarity.json", `[[1,0.3],[0.3,1]]`)

	a, err := LoadArtifactParts(titles, sim)
	if err != nil {
		t.Fatalf("LoadArtifactParts() error = %v", err)
	}
	if idx, _ := a.Catalog.IndexOf("Y"); idx != 1 {
		t.Errorf("IndexOf(Y) = %d, want 1", idx)
	}
}

func TestLoadArtifact_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name string
		body string
		want error
	}{
		{"size mismatch", `{"titles":["A","B"],"similarity":[[1]]}`, ErrArtifactMismatch},
		{"not square", `{"titles":["A","B"],"similarity":[[1,0],[0]]}`, similarity.ErrNotSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, dir, tt.name+".json", tt.body)
			if _, err := LoadArtifact(path); !errors.Is(err, tt.want) {
				t.Errorf("LoadArtifact() error = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("missing title field", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, dir, "missing-title.json", `{"titles":[{"name":"A"}],"similarity":[[1]]}`)
		if _, err := LoadArtifact(path); err == nil {
			t.Error("LoadArtifact() expected error for entry without title")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadArtifact(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("LoadArtifact() expected error for missing file")
		}
	})

	t.Run("bad json", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, dir, "bad.json", `{"titles": [`)
		if _, err := LoadArtifact(path); err == nil {
			t.Error("LoadArtifact() expected decode error")
		}
	})
}

package catalog

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/lehigh-university-libraries/shelf/internal/models"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}
	return path
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []models.Record
		warnings map[WarningKind]int
	}{
		{
			name:    "well formed rows",
			content: "Dune,Frank Herbert,1965,412,3\nEmma,Jane Austen,1815,474,1\n",
			expected: []models.Record{
				{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, PageCount: 412, Section: 3},
				{Title: "Emma", Author: "Jane Austen", PublicationYear: 1815, PageCount: 474, Section: 1},
			},
		},
		{
			name:    "invalid numeric value is skipped",
			content: "Dune,Frank Herbert,1965,412,3\n1984,George Orwell,abc,328,3\n",
			expected: []models.Record{
				{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, PageCount: 412, Section: 3},
			},
			warnings: map[WarningKind]int{InvalidValue: 1},
		},
		{
			name:    "incomplete row is skipped",
			content: "Dune,Frank Herbert,1965\nEmma,Jane Austen,1815,474,1\n",
			expected: []models.Record{
				{Title: "Emma", Author: "Jane Austen", PublicationYear: 1815, PageCount: 474, Section: 1},
			},
			warnings: map[WarningKind]int{IncompleteRow: 1},
		},
		{
			name:    "quoted fields and extra columns",
			content: "\"Good Omens, Nice and Accurate\",\"Pratchett, Gaiman\",1990,288,2,extra\n",
			expected: []models.Record{
				{Title: "Good Omens, Nice and Accurate", Author: "Pratchett, Gaiman", PublicationYear: 1990, PageCount: 288, Section: 2},
			},
		},
		{
			name:    "whitespace around numbers",
			content: "Dune,Frank Herbert, 1965 ,412,3\n",
			expected: []models.Record{
				{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, PageCount: 412, Section: 3},
			},
		},
		{
			name:    "blank line counts as incomplete row",
			content: "Dune,Frank Herbert,1965,412,3\n\nEmma,Jane Austen,1815,474,1\n\n",
			expected: []models.Record{
				{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, PageCount: 412, Section: 3},
				{Title: "Emma", Author: "Jane Austen", PublicationYear: 1815, PageCount: 474, Section: 1},
			},
			warnings: map[WarningKind]int{IncompleteRow: 2},
		},
		{
			name:    "quoted field spanning lines",
			content: "\"Dune\",\"Frank\nHerbert\",1965,412,3\nEmma,Jane Austen,1815,474,1\n",
			expected: []models.Record{
				{Title: "Dune", Author: "Frank\nHerbert", PublicationYear: 1965, PageCount: 412, Section: 3},
				{Title: "Emma", Author: "Jane Austen", PublicationYear: 1815, PageCount: 474, Section: 1},
			},
		},
		{
			name:     "empty file",
			content:  "",
			expected: []models.Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			records, report := Load(writeCatalog(t, tt.content), testLogger(&buf))

			if diff := cmp.Diff(tt.expected, records); diff != "" {
				t.Errorf("Records mismatch (-want +got):\n%s", diff)
			}

			total := 0
			for kind, want := range tt.warnings {
				total += want
				if got := report.Count(kind); got != want {
					t.Errorf("Expected %d %s warnings, got %d", want, kind, got)
				}
			}
			if len(report.Warnings) != total {
				t.Errorf("Expected %d warnings, got %v", total, report.Warnings)
			}
			if got := strings.Count(buf.String(), "Catalog load warning"); got != total {
				t.Errorf("Expected %d logged warnings, got %d", total, got)
			}
			if report.Loaded != len(tt.expected) {
				t.Errorf("Expected Loaded=%d, got %d", len(tt.expected), report.Loaded)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing.csv")

	records, report := Load(path, testLogger(&buf))

	if records == nil || len(records) != 0 {
		t.Errorf("Expected empty non-nil records, got %v", records)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Kind != FileNotFound {
		t.Fatalf("Expected exactly one file not found warning, got %v", report.Warnings)
	}
	if got := strings.Count(buf.String(), "Catalog load warning"); got != 1 {
		t.Errorf("Expected one logged warning, got %d", got)
	}
}

func TestLoadWarningLines(t *testing.T) {
	path := writeCatalog(t, "Dune,Frank Herbert,1965,412,3\nBad,Row\nEmma,Jane Austen,x,474,1\n")

	_, report := Load(path, slog.New(slog.DiscardHandler))

	if len(report.Warnings) != 2 {
		t.Fatalf("Expected 2 warnings, got %v", report.Warnings)
	}
	if report.Warnings[0].Line != 2 || report.Warnings[1].Line != 3 {
		t.Errorf("Expected warnings on lines 2 and 3, got %d and %d", report.Warnings[0].Line, report.Warnings[1].Line)
	}
	if report.Rows != 3 || report.Skipped() != 2 {
		t.Errorf("Expected 3 rows and 2 skipped, got %d and %d", report.Rows, report.Skipped())
	}
}

func TestLoadBlankLineNumbers(t *testing.T) {
	path := writeCatalog(t, "\nDune,Frank Herbert,1965,412,3\n\n\nEmma,Jane Austen,1815,474,1")

	records, report := Load(path, slog.New(slog.DiscardHandler))

	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %v", records)
	}
	var lines []int
	for _, w := range report.Warnings {
		if w.Kind != IncompleteRow {
			t.Errorf("Unexpected warning kind %s", w.Kind)
		}
		lines = append(lines, w.Line)
	}
	if diff := cmp.Diff([]int{1, 3, 4}, lines); diff != "" {
		t.Errorf("Warning lines mismatch (-want +got):\n%s", diff)
	}
	if report.Rows != 5 || report.Skipped() != 3 {
		t.Errorf("Expected 5 rows and 3 skipped, got %d and %d", report.Rows, report.Skipped())
	}
}

func TestLoadReadErrorKeepsPartialResult(t *testing.T) {
	var buf bytes.Buffer
	r := io.MultiReader(
		strings.NewReader("Dune,Frank Herbert,1965,412,3\n"),
		iotest.ErrReader(errors.New("disk went away")),
	)

	records, report := load(r, "catalog.csv", testLogger(&buf))

	if diff := cmp.Diff([]models.Record{dune}, records); diff != "" {
		t.Errorf("Records mismatch (-want +got):\n%s", diff)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Kind != UnexpectedFailure {
		t.Fatalf("Expected one unexpected failure warning, got %v", report.Warnings)
	}
	if !strings.Contains(report.Warnings[0].Message, "disk went away") {
		t.Errorf("Expected read error in message, got %q", report.Warnings[0].Message)
	}
	if got := strings.Count(buf.String(), "Catalog load warning"); got != 1 {
		t.Errorf("Expected one logged warning, got %d", got)
	}
}

func TestLoadUnreadablePath(t *testing.T) {
	// a directory opens fine but fails on read
	dir := t.TempDir()

	records, report := Load(dir, slog.New(slog.DiscardHandler))

	if len(records) != 0 {
		t.Errorf("Expected no records, got %v", records)
	}
	if report.Count(UnexpectedFailure) != 1 {
		t.Errorf("Expected one unexpected failure warning, got %v", report.Warnings)
	}
}

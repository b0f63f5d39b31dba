// Package export renders catalog records for display and writes catalog
// snapshots in other file formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/lehigh-university-libraries/shelf/internal/models"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// Formats lists the output formats accepted by Write
var Formats = []string{"text", "json", "yaml", "yml", "csv"}

// Write renders records to w in the given format
func Write(w io.Writer, records []models.Record, format string) error {
	switch format {
	case "text", "":
		return writeText(w, records)
	case "json":
		return writeJSON(w, records)
	case "yaml", "yml":
		return writeYAML(w, records)
	case "csv":
		return writeCSV(w, records)
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(Formats, ", "))
	}
}

// WriteFile writes a snapshot of records to path, choosing the encoding from
// the file extension (.yaml, .yml, .json, .csv or .parquet)
func WriteFile(path string, records []models.Record) error {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".parquet" {
		if err := parquet.WriteFile(path, records); err != nil {
			return fmt.Errorf("failed to write parquet file: %w", err)
		}
		return nil
	}

	var format string
	switch ext {
	case ".yaml", ".yml":
		format = "yaml"
	case ".json":
		format = "json"
	case ".csv":
		format = "csv"
	default:
		return fmt.Errorf("unsupported file format: %s (supported: .yaml, .json, .csv, .parquet)", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := Write(file, records, format); err != nil {
		return err
	}
	return file.Close()
}

func writeText(w io.Writer, records []models.Record) error {
	for i, r := range records {
		if _, err := fmt.Fprintf(w, "[%d] %s\n", i+1, r); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, records []models.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func writeYAML(w io.Writer, records []models.Record) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return encoder.Close()
}

// writeCSV uses the catalog file layout so the output can be loaded back
func writeCSV(w io.Writer, records []models.Record) error {
	writer := csv.NewWriter(w)
	for _, r := range records {
		if err := writer.Write(r.Row()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

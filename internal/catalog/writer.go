package catalog

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/lehigh-university-libraries/shelf/internal/models"
)

// Append writes rec as a new row at the end of the catalog file at path,
// creating the file if needed. It returns ErrDuplicateTitle without touching
// the file when records already holds the same title. records is not modified.
func Append(records []models.Record, rec models.Record, path string) error {
	if _, found := FindByTitle(records, rec.Title); found {
		return fmt.Errorf("%w: %s", ErrDuplicateTitle, rec.Title)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(rec.Row()); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	return file.Close()
}

package catalog

import (
	"cmp"
	"slices"

	"github.com/lehigh-university-libraries/shelf/internal/models"
)

// FindByTitle returns the first record whose title matches, ignoring case
func FindByTitle(records []models.Record, title string) (models.Record, bool) {
	for _, r := range records {
		if r.HasTitle(title) {
			return r, true
		}
	}
	return models.Record{}, false
}

// ListSection returns the records in section ordered by publication year.
// Records with the same year keep their catalog order.
func ListSection(records []models.Record, section int) []models.Record {
	result := make([]models.Record, 0)
	for _, r := range records {
		if r.Section == section {
			result = append(result, r)
		}
	}

	slices.SortStableFunc(result, func(a, b models.Record) int {
		return cmp.Compare(a.PublicationYear, b.PublicationYear)
	})

	return result
}

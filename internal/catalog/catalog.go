package catalog

import (
	"log/slog"

	"github.com/lehigh-university-libraries/shelf/internal/models"
)

// Catalog is the session state: the records read from the backing file and
// the path new records are appended to.
type Catalog struct {
	Path string

	// SyncOnAdd also appends added records to Records. When false, a new
	// record only shows up in memory after the next Reload.
	SyncOnAdd bool

	Records []models.Record
	logger  *slog.Logger
}

// New creates an empty catalog backed by path
func New(path string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		Path:    path,
		Records: make([]models.Record, 0),
		logger:  logger,
	}
}

// Open creates a catalog backed by path and loads it
func Open(path string, logger *slog.Logger) (*Catalog, *LoadReport) {
	c := New(path, logger)
	report := c.Reload()
	return c, report
}

// Reload replaces the in-memory records with the contents of the file
func (c *Catalog) Reload() *LoadReport {
	records, report := Load(c.Path, c.logger)
	c.Records = records
	c.logger.Info("Catalog loaded", "path", c.Path, "records", report.Loaded, "skipped", report.Skipped())
	return report
}

// Len returns the number of records in memory
func (c *Catalog) Len() int {
	return len(c.Records)
}

// IsEmpty reports whether no records are loaded
func (c *Catalog) IsEmpty() bool {
	return len(c.Records) == 0
}

// Add appends rec to the backing file, see Append
func (c *Catalog) Add(rec models.Record) error {
	if err := Append(c.Records, rec, c.Path); err != nil {
		return err
	}
	c.logger.Debug("Record appended", "path", c.Path, "title", rec.Title)

	if c.SyncOnAdd {
		c.Records = append(c.Records, rec)
	}
	return nil
}

// Find looks up a record by title, ignoring case
func (c *Catalog) Find(title string) (models.Record, bool) {
	return FindByTitle(c.Records, title)
}

// Section lists the records in a section ordered by publication year
func (c *Catalog) Section(section int) []models.Record {
	return ListSection(c.Records, section)
}

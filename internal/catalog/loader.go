package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/shelf/internal/models"
)

const fieldCount = 5

// Load reads the catalog file at path. It never fails: problems are logged
// as warnings, collected in the report, and whatever rows parsed cleanly are
// returned in file order.
func Load(path string, logger *slog.Logger) ([]models.Record, *LoadReport) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Opening catalog file", "path", path)

	file, err := os.Open(path)
	if err != nil {
		report := &LoadReport{Path: path}
		if errors.Is(err, fs.ErrNotExist) {
			report.warn(logger, FileNotFound, 0, fmt.Sprintf("file %s does not exist", path))
		} else {
			report.warn(logger, UnexpectedFailure, 0, fmt.Sprintf("unexpected error while loading: %v", err))
		}
		return make([]models.Record, 0), report
	}
	defer file.Close()

	return load(file, path, logger)
}

// load parses catalog rows from r. path is only used for reporting.
func load(r io.Reader, path string, logger *slog.Logger) ([]models.Record, *LoadReport) {
	report := &LoadReport{Path: path}
	records := make([]models.Record, 0)

	counter := &lineCounter{r: r}
	reader := csv.NewReader(counter)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// last line consumed by the previous row, used to spot blank lines the
	// csv reader skips
	lastLine := 0
	blank := func(upTo int) {
		for l := lastLine + 1; l < upTo; l++ {
			report.Rows++
			report.warn(logger, IncompleteRow, l, fmt.Sprintf("incomplete row, expected %d fields but got 0", fieldCount))
		}
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			blank(counter.lines() + 1)
			break
		}
		if err != nil {
			// read error from the underlying file, keep what we have
			report.warn(logger, UnexpectedFailure, 0, fmt.Sprintf("unexpected error while loading: %v", err))
			break
		}
		line, _ := reader.FieldPos(0)
		blank(line)
		report.Rows++

		end, _ := reader.FieldPos(len(row) - 1)
		lastLine = end + strings.Count(row[len(row)-1], "\n")

		record, kind, msg := parseRow(row)
		if kind != "" {
			report.warn(logger, kind, line, msg)
			continue
		}
		records = append(records, record)
	}

	report.Loaded = len(records)
	logger.Debug("Finished reading catalog file", "path", path, "rows", report.Rows, "loaded", report.Loaded, "skipped", report.Skipped())

	return records, report
}

// lineCounter counts the lines passing through it
type lineCounter struct {
	r        io.Reader
	newlines int
	partial  bool
}

func (c *lineCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.newlines += bytes.Count(p[:n], []byte{'\n'})
		c.partial = p[n-1] != '\n'
	}
	return n, err
}

// lines returns the number of lines read so far, counting an unterminated
// last line
func (c *lineCounter) lines() int {
	if c.partial {
		return c.newlines + 1
	}
	return c.newlines
}

// parseRow converts one csv row into a record, or reports why it can't
func parseRow(row []string) (models.Record, WarningKind, string) {
	if len(row) < fieldCount {
		return models.Record{}, IncompleteRow, fmt.Sprintf("incomplete row, expected %d fields but got %d", fieldCount, len(row))
	}

	var nums [3]int
	for i, raw := range row[2:fieldCount] {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return models.Record{}, InvalidValue, fmt.Sprintf("%s is not a number: %q", models.Columns[i+2], raw)
		}
		nums[i] = n
	}

	return models.Record{
		Title:           row[0],
		Author:          row[1],
		PublicationYear: nums[0],
		PageCount:       nums[1],
		Section:         nums[2],
	}, "", ""
}

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Record represents one book in the catalog
type Record struct {
	Title           string `json:"title" yaml:"title" parquet:"title"`
	Author          string `json:"author" yaml:"author" parquet:"author"`
	PublicationYear int    `json:"publication_year" yaml:"publicationyear" parquet:"publication_year"`
	PageCount       int    `json:"page_count" yaml:"pagecount" parquet:"page_count"`
	Section         int    `json:"section" yaml:"section" parquet:"section"`
}

// Columns is the field order of a catalog file row
var Columns = []string{"Title", "Author", "PublicationYear", "PageCount", "Section"}

// HasTitle reports whether the record's title matches title, ignoring case
func (r Record) HasTitle(title string) bool {
	return strings.EqualFold(r.Title, title)
}

// Row returns the record as a catalog file row
func (r Record) Row() []string {
	return []string{
		r.Title,
		r.Author,
		strconv.Itoa(r.PublicationYear),
		strconv.Itoa(r.PageCount),
		strconv.Itoa(r.Section),
	}
}

func (r Record) String() string {
	return fmt.Sprintf("%s by %s (%d, %d pages, section %d)",
		r.Title, r.Author, r.PublicationYear, r.PageCount, r.Section)
}

// Package shell implements the interactive catalog menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/shelf/internal/catalog"
	"github.com/lehigh-university-libraries/shelf/internal/export"
	"github.com/lehigh-university-libraries/shelf/internal/models"
)

const menu = `
--- LIBRARY MENU ---
1. Show loaded records
2. Add a new book
3. Search a book by title
4. List a section sorted by year
5. Exit
`

// errQuit ends the loop without reporting an error
var errQuit = errors.New("quit")

type Shell struct {
	catalog *catalog.Catalog
	in      *bufio.Reader
	out     io.Writer
}

func New(c *catalog.Catalog, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		catalog: c,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run shows the menu until the user exits, input ends, or ctx is canceled
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt(ctx, "Choose an option >> ")
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			err = s.show()
		case "2":
			err = s.add(ctx)
		case "3":
			err = s.search(ctx)
		case "4":
			err = s.section(ctx)
		case "5":
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Try again.")
		}

		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, errQuit) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

func (s *Shell) show() error {
	if s.catalog.IsEmpty() {
		fmt.Fprintln(s.out, "The catalog is empty.")
		return nil
	}
	return export.Write(s.out, s.catalog.Records, "text")
}

func (s *Shell) add(ctx context.Context) error {
	if s.catalog.IsEmpty() {
		fmt.Fprintln(s.out, "Load the catalog from file first.")
		return nil
	}

	title, err := s.prompt(ctx, "Title: ")
	if err != nil {
		return err
	}
	author, err := s.prompt(ctx, "Author: ")
	if err != nil {
		return err
	}

	var nums [3]int
	for i, label := range []string{"Publication year: ", "Number of pages: ", "Section: "} {
		n, ok, err := s.promptInt(ctx, label)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.out, "Error: year, pages and section must be valid numbers.")
			return nil
		}
		nums[i] = n
	}

	rec := models.Record{
		Title:           title,
		Author:          author,
		PublicationYear: nums[0],
		PageCount:       nums[1],
		Section:         nums[2],
	}

	err = s.catalog.Add(rec)
	switch {
	case err == nil:
		fmt.Fprintln(s.out, "Book added successfully!")
	case errors.Is(err, catalog.ErrDuplicateTitle):
		fmt.Fprintln(s.out, "Could not add the book (it may already be in the catalog).")
	default:
		fmt.Fprintf(s.out, "Could not add the book: %v\n", err)
	}
	return nil
}

func (s *Shell) search(ctx context.Context) error {
	if s.catalog.IsEmpty() {
		fmt.Fprintln(s.out, "The catalog is empty.")
		return nil
	}

	title, err := s.prompt(ctx, "Title to search: ")
	if err != nil {
		return err
	}

	if rec, found := s.catalog.Find(title); found {
		fmt.Fprintf(s.out, "Book found: %s\n", rec)
	} else {
		fmt.Fprintln(s.out, "Book not found.")
	}
	return nil
}

func (s *Shell) section(ctx context.Context) error {
	if s.catalog.IsEmpty() {
		fmt.Fprintln(s.out, "The catalog is empty.")
		return nil
	}

	section, ok, err := s.promptInt(ctx, "Section number to list: ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "Error: enter a valid number.")
		return nil
	}

	records := s.catalog.Section(section)
	if len(records) == 0 {
		return nil
	}

	fmt.Fprintf(s.out, "\nSection %d sorted:\n", section)
	for _, r := range records {
		fmt.Fprintf(s.out, "- %s\n", r.Title)
	}
	return nil
}

func (s *Shell) promptInt(ctx context.Context, label string) (int, bool, error) {
	answer, err := s.prompt(ctx, label)
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// prompt prints label and waits for a line of input. It returns errQuit when
// input ends or ctx is canceled first.
func (s *Shell) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(s.out, label)

	type result struct {
		line string
		err  error
	}
	inputCh := make(chan result, 1)
	go func() {
		line, err := s.in.ReadString('\n')
		inputCh <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", errQuit
	case r := <-inputCh:
		line := strings.TrimSpace(r.line)
		if r.err != nil {
			if errors.Is(r.err, io.EOF) && line != "" {
				return line, nil
			}
			if errors.Is(r.err, io.EOF) {
				return "", errQuit
			}
			return "", fmt.Errorf("failed to read input: %w", r.err)
		}
		return line, nil
	}
}

// Package extract turns the prank-call wiki page into first and last name
// lists.
//
// The first two tables on the page are used. From each, the name column is
// kept and the first data row dropped. The first table additionally loses a
// fixed set of separator rows and any blank rows. Every remaining cell is split on
// its first space into a first name and a last name; cells that do not split
// into two non-empty parts are skipped.
package extract

import (
	"strings"

	"prank_names/internal/config"
	"prank_names/internal/models"
)

type Extractor struct {
	// NameColumn is the column holding "<first> <last>" entries.
	NameColumn int
	// ExcludedRows are data row indices of the first table that are never
	// names. Header rows are not counted. Indices past the end of the table
	// are ignored.
	ExcludedRows []int
}

func New(cfg config.ExtractConfig) *Extractor {
	return &Extractor{
		NameColumn:   cfg.NameColumn,
		ExcludedRows: append([]int(nil), cfg.ExcludedRows...),
	}
}

// Extract parses body and builds the name lists.
func (e *Extractor) Extract(body string) (models.NameLists, error) {
	tables, err := ParseTables(strings.NewReader(body))
	if err != nil {
		return models.NameLists{}, err
	}
	return e.ExtractTables(tables)
}

// ExtractTables builds the name lists from already parsed tables. Tables
// beyond the second are ignored.
func (e *Extractor) ExtractTables(tables []models.Table) (models.NameLists, error) {
	if len(tables) < 2 {
		return models.NameLists{}, &Error{Kind: KindMissingTables, Tables: len(tables)}
	}

	excluded := make(map[int]bool, len(e.ExcludedRows))
	for _, row := range e.ExcludedRows {
		excluded[row] = true
	}

	first := dropEmpty(e.column(tables[0], excluded))
	second := e.column(tables[1], nil)

	var names models.NameLists
	for _, cells := range [][]string{first, second} {
		for _, cell := range cells {
			firstName, lastName, ok := SplitName(cell)
			if !ok {
				continue
			}
			names.First = append(names.First, firstName)
			names.Last = append(names.Last, lastName)
		}
	}

	if names.Empty() {
		return models.NameLists{}, &Error{Kind: KindNoNamesFound, Tables: len(tables)}
	}
	return names, nil
}

// column returns the name column of the data rows, skipping data row 0 and the
// rows listed in excluded.
func (e *Extractor) column(t models.Table, excluded map[int]bool) []string {
	var cells []string
	for i := 1; i < len(t.Rows); i++ {
		if excluded[i] {
			continue
		}
		cells = append(cells, t.Cell(i, e.NameColumn))
	}
	return cells
}

func dropEmpty(cells []string) []string {
	kept := cells[:0]
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			kept = append(kept, c)
		}
	}
	return kept
}

// SplitName splits an entry on its first space. ok is false unless both
// halves are non-empty.
func SplitName(entry string) (first, last string, ok bool) {
	first, last, found := strings.Cut(strings.TrimSpace(entry), " ")
	last = strings.TrimSpace(last)
	if !found || first == "" || last == "" {
		return "", "", false
	}
	return first, last, true
}

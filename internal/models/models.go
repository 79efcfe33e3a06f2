package models

// Page is a fetched document. It lives only until the names are extracted.
type Page struct {
	URL         string
	FinalURL    string
	StatusCode  int
	ContentType string
	Body        string
	ContentHash string
}

// Table is an HTML table as a grid of cell texts. Header holds the column
// header rows; Rows holds the data rows, numbered from 0.
type Table struct {
	Header [][]string
	Rows   [][]string
}

// Cell returns the text of data row row at col or "" when either index is out
// of range.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// NameLists holds the first and last names harvested from the page. The two
// slices are not paired by position.
type NameLists struct {
	First []string
	Last  []string
}

func (n NameLists) Empty() bool {
	return len(n.First) == 0 || len(n.Last) == 0
}

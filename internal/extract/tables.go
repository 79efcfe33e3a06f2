package extract

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"prank_names/internal/models"
)

// Upper bounds on span expansion; wider spans are clamped.
const (
	maxColspan = 64
	maxRowspan = 1024
)

var reWhitespace = regexp.MustCompile(`[\s\p{Zs}]+`)

var blockElements = map[string]bool{
	"br": true, "div": true, "p": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// ParseTables returns every <table> in document order. Each table holds its
// own rows only; rows of nested tables belong to the nested table.
//
// Rows inside <thead> form the header. Without a <thead>, the leading rows
// made only of <th> cells form it instead. <tfoot> rows follow the body rows.
// colspan and rowspan are expanded so every row lines up with the grid.
func ParseTables(r io.Reader) ([]models.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var tables []models.Table
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		var head, body, foot []*goquery.Selection
		tbl.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
			return tr.Closest("table").IsSelection(tbl)
		}).Each(func(_ int, tr *goquery.Selection) {
			switch goquery.NodeName(tr.Parent()) {
			case "thead":
				head = append(head, tr)
			case "tfoot":
				foot = append(foot, tr)
			default:
				body = append(body, tr)
			}
		})

		if len(head) == 0 {
			for len(body) > 0 && headerRow(body[0]) {
				head = append(head, body[0])
				body = body[1:]
			}
		}

		tables = append(tables, models.Table{
			Header: parseRows(head),
			Rows:   append(parseRows(body), parseRows(foot)...),
		})
	})
	return tables, nil
}

func headerRow(tr *goquery.Selection) bool {
	cells := tr.ChildrenFiltered("th, td")
	return cells.Length() > 0 && cells.Filter("th").Length() == cells.Length()
}

// carry is a rowspan cell still owed to the next left rows.
type carry struct {
	text string
	left int
}

// parseRows lays trs out as a grid. carried is indexed by column; a cell
// spanning rows is repeated at its column in each following row it covers.
func parseRows(trs []*goquery.Selection) [][]string {
	var rows [][]string
	var carried []carry

	for _, tr := range trs {
		row := []string{}
		fill := func() {
			for len(row) < len(carried) && carried[len(row)].left > 0 {
				c := &carried[len(row)]
				row = append(row, c.text)
				c.left--
			}
		}

		fill()
		tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
			text := cellText(cell)
			down := span(cell, "rowspan", maxRowspan)
			for range span(cell, "colspan", maxColspan) {
				if down > 1 {
					for len(carried) <= len(row) {
						carried = append(carried, carry{})
					}
					carried[len(row)] = carry{text: text, left: down - 1}
				}
				row = append(row, text)
			}
			fill()
		})

		// Spans reaching past this row's last cell.
		for col := len(row); col < len(carried); col++ {
			if carried[col].left == 0 {
				continue
			}
			for len(row) < col {
				row = append(row, "")
			}
			row = append(row, carried[col].text)
			carried[col].left--
		}

		rows = append(rows, row)
	}
	return rows
}

func span(cell *goquery.Selection, attr string, limit int) int {
	v, ok := cell.Attr(attr)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 1
	}
	return min(n, limit)
}

func cellText(cell *goquery.Selection) string {
	var b strings.Builder
	for _, n := range cell.Nodes {
		writeText(n, &b)
	}
	return normalizeText(b.String())
}

// writeText flattens a node's text, padding block elements with spaces so
// "Hugh<br>Jass" does not collapse into one word.
func writeText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, b)
	}
	if block {
		b.WriteByte(' ')
	}
}

func normalizeText(text string) string {
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

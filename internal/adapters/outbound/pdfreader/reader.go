package pdfreader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ScottGunn22/dirchecker/internal/domain"
	"github.com/ledongthuc/pdf"
)

// minCellGap is the horizontal whitespace, in points, that separates
// two cells in a header table. Runs of positioned text closer than
// this are joined into one cell.
const minCellGap = 10.0

// Reader implements domain.PageReader using the ledongthuc/pdf
// backend. The file handle lives only for the duration of one call.
type Reader struct{}

func New() *Reader {
	return &Reader{}
}

// ReadFirstPage extracts the first page's plain text and its row
// structure. PDF headers are usually laid out as label/value tables;
// the positioned text rows are regrouped into cells so the table
// extraction tier can read them.
func (r *Reader) ReadFirstPage(path string) (*domain.PageContent, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	if doc.NumPage() < 1 {
		return nil, errors.New("PDF has no pages")
	}
	page := doc.Page(1)
	if page.V.IsNull() {
		return nil, errors.New("first page is unreadable")
	}

	content := &domain.PageContent{}

	text, textErr := page.GetPlainText(nil)
	if textErr == nil {
		content.Text = text
	}

	rows, rowsErr := page.GetTextByRow()
	if rowsErr == nil {
		if table := rowsToTable(rows); len(table) > 0 {
			content.Tables = [][][]string{table}
		}
	}

	if textErr != nil && rowsErr != nil {
		return nil, fmt.Errorf("extracting first page text: %w", textErr)
	}
	return content, nil
}

// rowsToTable regroups each positioned text row into cells split on
// horizontal gaps.
func rowsToTable(rows pdf.Rows) [][]string {
	var table [][]string
	for _, row := range rows {
		if cells := rowCells(row.Content); len(cells) > 0 {
			table = append(table, cells)
		}
	}
	return table
}

// rowCells joins a row's text runs (already ordered by X) into cell
// strings, starting a new cell whenever the next run begins more than
// minCellGap past the end of the previous one.
func rowCells(texts []pdf.Text) []string {
	var cells []string
	var cur strings.Builder
	var lastEnd float64

	for i, t := range texts {
		if t.S == "" {
			continue
		}
		if i > 0 && cur.Len() > 0 && t.X-lastEnd > minCellGap {
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		}
		cur.WriteString(t.S)
		end := t.X + t.W
		if end > lastEnd {
			lastEnd = end
		}
	}
	if cur.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cur.String()))
	}

	dropEmpty := cells[:0]
	for _, c := range cells {
		if c != "" {
			dropEmpty = append(dropEmpty, c)
		}
	}
	return dropEmpty
}

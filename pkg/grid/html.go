package grid

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReadHTML reads the first <table> of a spreadsheet exported as a web page.
// Merged cells are expanded the way a CSV export lays them out: the text sits in the
// first column of the span and the remaining positions are empty.
func ReadHTML(r io.Reader) (Grid, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found in html document")
	}

	var rows [][]string
	// column index -> number of further rows still covered by a rowspan
	covered := make(map[int]int)

	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var row []string
		col := 0

		skipCovered := func() {
			for covered[col] > 0 {
				covered[col]--
				if covered[col] == 0 {
					delete(covered, col)
				}
				row = append(row, "")
				col++
			}
		}

		tr.ChildrenFiltered("td, th").Each(func(j int, cell *goquery.Selection) {
			skipCovered()

			text := strings.TrimSpace(cell.Text())
			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")

			for k := 0; k < colspan; k++ {
				if k == 0 {
					row = append(row, text)
				} else {
					row = append(row, "")
				}
				if rowspan > 1 {
					covered[col] = rowspan - 1
				}
				col++
			}
		})
		skipCovered()

		rows = append(rows, row)
	})

	return DropBlankRows(rows), nil
}

// spanAttr reads a colspan/rowspan attribute, defaulting to 1.
func spanAttr(sel *goquery.Selection, name string) int {
	val, ok := sel.Attr(name)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

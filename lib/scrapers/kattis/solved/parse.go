package solved

import (
	"io"
	"kattis-solved/lib/htmlutil"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
)

// ParseProblems extracts problem ids from a listing page: for every table
// row, the final path segment of the first link in its first cell. Rows
// without such a link are skipped.
func ParseProblems(body io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	var problems []string
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		anchor := htmlutil.FirstCellAnchor(row)
		if anchor == nil {
			return
		}
		href, ok := htmlutil.GetAttr(anchor, "href")
		if !ok {
			return
		}
		id := htmlutil.LastPathSegment(href)
		if id == "" {
			slog.Debug("skipping link without problem id", "href", href)
			return
		}
		slog.Debug("found problem", "id", id, "name", htmlutil.GetText(anchor))
		problems = append(problems, id)
	})
	return problems, nil
}

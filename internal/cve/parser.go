package cve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// sentinel errors.
var (
	ErrResultsTableNotFound = errors.New("results table not found")
)

// idPrefix marks a data row; rows without it (headers, footers) are skipped.
const idPrefix = "CVE-"

// Result holds the extracted content of a search results page.
type Result struct {
	Records Records
	Total   int
}

// Parse extracts CVE records from a search results page body.
//
// The page reports its match count next to the "Search Results" heading and
// lists matches in a table under div#TableWithRules. A reported count of zero
// comes with no table at all, which is a valid empty result; in every other
// case a missing table means the page layout is not the expected one.
func Parse(body string) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	total, hasTotal := resultCount(doc)

	table := doc.Find("div#TableWithRules table").First()
	if table.Length() == 0 {
		if hasTotal && total == 0 {
			return &Result{Total: 0, Records: Records{}}, nil
		}

		return nil, ErrResultsTableNotFound
	}

	records := Records{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < 2 {
			return
		}

		id := strings.TrimSpace(cells.Eq(0).Text())
		if !strings.HasPrefix(id, idPrefix) {
			return
		}

		records = append(records, Record{
			ID:          id,
			Description: strings.TrimSpace(cells.Eq(1).Text()),
		})
	})

	if !hasTotal {
		total = len(records)
	}

	return &Result{Total: total, Records: records}, nil
}

func resultCount(doc *goquery.Document) (int, bool) {
	var (
		count int
		found bool
	)

	doc.Find("h2").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		if strings.TrimSpace(heading.Text()) != "Search Results" {
			return true
		}

		text := strings.TrimSpace(heading.Next().Find("b").First().Text())
		n, err := strconv.Atoi(text)
		if err != nil {
			return false
		}

		count = n
		found = true

		return false
	})

	return count, found
}

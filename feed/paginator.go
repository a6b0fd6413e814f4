package feed

import (
	"strconv"
	"strings"

	"Yatube/models"
)

// DefaultPageSize is the number of posts per feed page.
const DefaultPageSize = 10

// Page is one slice of a feed plus the numbers the templates need.
type Page struct {
	Posts    []models.Post
	Number   int
	NumPages int
	Count    int64
	PerPage  int
}

func (p *Page) HasNext() bool     { return p.Number < p.NumPages }
func (p *Page) HasPrevious() bool { return p.Number > 1 }
func (p *Page) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

func (p *Page) NextPageNumber() int     { return p.Number + 1 }
func (p *Page) PreviousPageNumber() int { return p.Number - 1 }

// PageRange lists every page number from 1 to NumPages.
func (p *Page) PageRange() []int {
	pages := make([]int, p.NumPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// StartIndex is the 1-based position of the first post on the page.
func (p *Page) StartIndex() int {
	if p.Count == 0 {
		return 0
	}
	return (p.Number-1)*p.PerPage + 1
}

// EndIndex is the 1-based position of the last post on the page.
func (p *Page) EndIndex() int {
	if p.Number == p.NumPages {
		return int(p.Count)
	}
	return p.Number * p.PerPage
}

// NumPages never returns less than one so an empty feed still has a page.
func NumPages(count int64, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if count <= 0 {
		return 1
	}
	return int((count + int64(perPage) - 1) / int64(perPage))
}

// ResolvePageNumber maps the raw ?page= value to a valid page.
// Missing or non-numeric values give page 1. Numbers outside the range,
// including zero and negatives, give the last page.
func ResolvePageNumber(raw string, numPages int) int {
	if numPages < 1 {
		numPages = 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	if n < 1 || n > numPages {
		return numPages
	}
	return n
}

package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumPages(t *testing.T) {
	cases := []struct {
		count   int64
		perPage int
		want    int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{13, 10, 2},
		{30, 10, 3},
		{5, 0, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NumPages(tc.count, tc.perPage), "count=%d perPage=%d", tc.count, tc.perPage)
	}
}

func TestResolvePageNumber(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"abc": 1,
		"1":   1,
		"2":   2,
		" 3 ": 3,
		"4":   3,
		"99":  3,
		"0":   3,
		"-1":  3,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ResolvePageNumber(raw, 3), "raw=%q", raw)
	}
	assert.Equal(t, 1, ResolvePageNumber("5", 0))
}

func TestPageNavigation(t *testing.T) {
	page := &Page{Number: 2, NumPages: 3, Count: 25, PerPage: 10}
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrevious())
	assert.True(t, page.HasOtherPages())
	assert.Equal(t, 3, page.NextPageNumber())
	assert.Equal(t, 1, page.PreviousPageNumber())
	assert.Equal(t, []int{1, 2, 3}, page.PageRange())
	assert.Equal(t, 11, page.StartIndex())
	assert.Equal(t, 20, page.EndIndex())

	last := &Page{Number: 3, NumPages: 3, Count: 25, PerPage: 10}
	assert.Equal(t, 21, last.StartIndex())
	assert.Equal(t, 25, last.EndIndex())

	single := &Page{Number: 1, NumPages: 1}
	assert.False(t, single.HasOtherPages())
	assert.Equal(t, 0, single.StartIndex())
	assert.Equal(t, 0, single.EndIndex())
}

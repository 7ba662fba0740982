package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pages(items []Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		if it.Ellipsis {
			out = append(out, -1)
		} else {
			out = append(out, it.Page)
		}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{name: "exact multiple", total: 100, pageSize: 25, want: 4},
		{name: "partial last page", total: 101, pageSize: 25, want: 5},
		{name: "single result", total: 1, pageSize: 25, want: 1},
		{name: "no results", total: 0, pageSize: 25, want: 0},
		{name: "zero page size", total: 100, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int // -1 marks an ellipsis
	}{
		{name: "below threshold lists all", current: 1, total: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "at threshold lists all", current: 6, total: 6, want: []int{1, 2, 3, 4, 5, 6}},
		{name: "middle of long run", current: 10, total: 20, want: []int{1, -1, 9, 10, 11, -1, 20}},
		{name: "near start", current: 2, total: 20, want: []int{1, 2, 3, -1, 20}},
		{name: "run abuts first page", current: 3, total: 20, want: []int{1, 2, 3, 4, -1, 20}},
		{name: "run abuts last page", current: 18, total: 20, want: []int{1, -1, 17, 18, 19, 20}},
		{name: "on last page", current: 20, total: 20, want: []int{1, -1, 19, 20}},
		{name: "no pages", current: 1, total: 0, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pages(Window(tt.current, tt.total))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindow_AtMostTwoEllipses(t *testing.T) {
	for total := 7; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			gaps := 0
			for _, it := range Window(current, total) {
				if it.Ellipsis {
					gaps++
				}
			}
			require.LessOrEqual(t, gaps, 2, "current=%d total=%d", current, total)
		}
	}
}

func TestController_SetPageClamps(t *testing.T) {
	c := NewController(25)
	c.SetTotal(101) // 5 pages

	assert.False(t, c.SetPage(0), "page 0 is out of range")
	assert.False(t, c.SetPage(6), "past the last page")
	assert.Equal(t, 1, c.Current())

	assert.True(t, c.SetPage(5))
	assert.Equal(t, 5, c.Current())
	assert.Equal(t, 100, c.Offset())
}

func TestController_NextPrev(t *testing.T) {
	c := NewController(25)
	c.SetTotal(50) // 2 pages

	assert.False(t, c.Prev())
	assert.True(t, c.Next())
	assert.Equal(t, 2, c.Current())
	assert.False(t, c.Next())
	assert.True(t, c.Prev())
	assert.Equal(t, 1, c.Current())
}

func TestController_PageSizeChangeResetsPage(t *testing.T) {
	c := NewController(25)
	c.SetTotal(200)
	require.True(t, c.SetPage(4))

	c.SetPageSize(50)
	assert.Equal(t, 1, c.Current())
	assert.Equal(t, 50, c.PageSize())
}

func TestController_PageSizeClampsToMax(t *testing.T) {
	c := NewController(10_000)
	assert.Equal(t, MaxPageSize, c.PageSize())
}

func TestController_ShrunkenTotalClampsCurrent(t *testing.T) {
	c := NewController(25)
	c.SetTotal(500)
	require.True(t, c.SetPage(20))

	c.SetTotal(30) // now only 2 pages
	assert.Equal(t, 2, c.Current())

	c.SetTotal(0)
	assert.Equal(t, 1, c.Current(), "empty result set pins to page 1")
}

func TestController_ResetReturnsToFirstPage(t *testing.T) {
	c := NewController(25)
	c.SetTotal(500)
	require.True(t, c.SetPage(7))

	c.Reset()
	assert.Equal(t, 1, c.Current())
}

// Package pagination translates a total result count and a page size into a
// navigable 1-based page sequence and a compact page-number window for
// display. It is pure state: no I/O, no suspension points.
package pagination

// windowThreshold is the page count at or below which the display window
// lists every page with no ellipsis markers.
const windowThreshold = 6

// DefaultPageSize matches the catalog's default search page size.
const DefaultPageSize = 25

// MaxPageSize is the largest page size the catalog search endpoint accepts.
const MaxPageSize = 100

// Item is one slot in a display window: either a concrete page number or an
// ellipsis marker standing for an elided run of pages.
type Item struct {
	Page     int
	Ellipsis bool
}

// TotalPages returns ceil(total/pageSize). It is 0 when total is 0; callers
// that want to render an empty state treat 0 as a single empty page.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Window computes the compact page-number sequence for rendering pagination
// controls. At or below the threshold every page is listed. Above it, page 1
// and the last page are always present, the contiguous run current-1..current+1
// (clamped to [2, total-1]) surrounds the current page, and an ellipsis marker
// fills each side whose run does not abut the first or last page.
func Window(current, total int) []Item {
	if total <= 0 {
		return nil
	}

	if total <= windowThreshold {
		items := make([]Item, 0, total)
		for p := 1; p <= total; p++ {
			items = append(items, Item{Page: p})
		}
		return items
	}

	items := []Item{{Page: 1}}

	if current > 3 {
		items = append(items, Item{Ellipsis: true})
	}

	start := max(2, current-1)
	end := min(total-1, current+1)
	for p := start; p <= end; p++ {
		items = append(items, Item{Page: p})
	}

	if current < total-2 {
		items = append(items, Item{Ellipsis: true})
	}

	return append(items, Item{Page: total})
}

// Controller tracks the current page against a total result count.
//
// Invariant: 1 <= current <= max(TotalPages, 1). Changing the page size or
// the active filter set resets the current page to 1; this must happen before
// the next search request is issued.
type Controller struct {
	current  int
	pageSize int
	total    int
}

// NewController returns a controller positioned on page 1. A non-positive
// pageSize falls back to [DefaultPageSize]; sizes above [MaxPageSize] clamp.
func NewController(pageSize int) *Controller {
	c := &Controller{current: 1}
	c.SetPageSize(pageSize)
	return c
}

// Current returns the 1-based current page.
func (c *Controller) Current() int { return c.current }

// PageSize returns the active page size.
func (c *Controller) PageSize() int { return c.pageSize }

// TotalPages returns the page count for the last known total.
func (c *Controller) TotalPages() int { return TotalPages(c.total, c.pageSize) }

// Offset returns the zero-based result offset of the current page.
func (c *Controller) Offset() int { return (c.current - 1) * c.pageSize }

// SetTotal records a new total result count and clamps the current page into
// the valid range, so a shrunken result set never leaves the controller past
// the end.
func (c *Controller) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	c.total = total
	if pages := c.TotalPages(); c.current > pages {
		c.current = max(pages, 1)
	}
}

// SetPage moves to the target page. It is a no-op returning false when target
// is outside [1, TotalPages].
func (c *Controller) SetPage(target int) bool {
	if target < 1 || target > c.TotalPages() {
		return false
	}
	c.current = target
	return true
}

// Next advances one page when possible.
func (c *Controller) Next() bool { return c.SetPage(c.current + 1) }

// Prev steps back one page when possible.
func (c *Controller) Prev() bool { return c.SetPage(c.current - 1) }

// SetPageSize changes the page size and resets the current page to 1.
func (c *Controller) SetPageSize(pageSize int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	c.pageSize = pageSize
	c.current = 1
}

// Reset returns to page 1. Called whenever the active filter set or sort
// order changes.
func (c *Controller) Reset() { c.current = 1 }

// Window returns the display window for the controller's current position.
func (c *Controller) Window() []Item { return Window(c.current, c.TotalPages()) }

package search

// Zip-code window limits. The default size matches the catalog's default
// location page; the maximum bounds user-chosen batch sizes.
const (
	DefaultZipPageSize = 25
	MaxCustomZipSize   = 1000
)

// ZipWindow is the paging cursor over the server-side set of zip codes
// matching the current location criteria.
type ZipWindow struct {
	From int
	Size int
}

// DefaultZipWindow returns the window used before any location query has
// been applied.
func DefaultZipWindow() ZipWindow {
	return ZipWindow{From: 0, Size: DefaultZipPageSize}
}

// advance derives the next window from the loading mode. total is the known
// count of matching zip codes (0 when no query has run yet).
//
// Policy, applied uniformly across source variants: "next" past the end
// wraps to offset 0, "previous" clamps at 0, a custom size clamps to
// [1, MaxCustomZipSize] and restarts from offset 0.
func (w ZipWindow) advance(mode ZipLoadMode, total int, customSize *int) ZipWindow {
	switch mode {
	case ZipLoadNext:
		next := ZipWindow{From: w.From + w.Size, Size: w.Size}
		if total > 0 && next.From >= total {
			next.From = 0
		}
		return next

	case ZipLoadPrevious:
		prev := ZipWindow{From: w.From - w.Size, Size: w.Size}
		if prev.From < 0 {
			prev.From = 0
		}
		return prev

	case ZipLoadCustom:
		size := DefaultZipPageSize
		if customSize != nil {
			size = *customSize
		}
		if size < 1 {
			size = 1
		}
		if size > MaxCustomZipSize {
			size = MaxCustomZipSize
		}
		return ZipWindow{From: 0, Size: size}

	default:
		return DefaultZipWindow()
	}
}

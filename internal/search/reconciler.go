package search

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"dogfetch/models"
)

// FilterCriteria is the active filter set applied to dog searches. Breeds are
// re-derived immediately on every breed toggle; ages arrive via submitted
// form deltas; zip codes are merged in once a location query resolves.
type FilterCriteria struct {
	Breeds   []string
	ZipCodes []string
	AgeMin   *int
	AgeMax   *int
}

// FilterDelta is the age portion of a committed form, folded into the active
// criteria on submission.
type FilterDelta struct {
	AgeMin *int
	AgeMax *int
}

// SubmitResult is the outcome of a successful form submission.
type SubmitResult struct {
	// Delta is the age filter to fold into the dog search.
	Delta FilterDelta

	// LocationQuery is the outgoing zip-code lookup, or nil when the form
	// carried no location criteria (an implicit reset).
	LocationQuery *models.LocationSearchQuery

	// ImplicitReset is set when the submission cleared the location filter
	// instead of issuing a query.
	ImplicitReset bool

	// Window is the zip-code paging window in effect after this submission.
	Window ZipWindow
}

// Reconciler owns the combined filter state: the immediate breed slice, the
// staged state selections and form, the last-applied snapshot for dirty
// detection, and the zip-code paging window.
//
// It is not safe for concurrent use; the client drives it from a single
// event loop.
type Reconciler struct {
	breeds []models.BreedOption
	states []models.StateOption

	criteria FilterCriteria
	window   ZipWindow
	zipTotal int

	applied string
}

// NewReconciler returns a reconciler with no breeds loaded, all states
// unselected, and the default zip window.
func NewReconciler() *Reconciler {
	r := &Reconciler{
		states: models.StateOptions(),
		window: DefaultZipWindow(),
	}
	r.applied = r.snapshotKey(defaultForm())
	return r
}

func defaultForm() FormValues {
	return FormValues{ZipMode: ZipLoadFirst, BoxMode: BoxNone}
}

// SetBreeds installs the breed list fetched from the catalog, sorted
// case-insensitively, all unselected. Any prior selection is discarded.
func (r *Reconciler) SetBreeds(names []string) {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(strings.TrimSpace(sorted[i])) < strings.ToLower(strings.TrimSpace(sorted[j]))
	})

	r.breeds = make([]models.BreedOption, len(sorted))
	for i, name := range sorted {
		r.breeds[i] = models.BreedOption{Name: name}
	}
	r.criteria.Breeds = nil
}

// Breeds returns the breed options in display order.
func (r *Reconciler) Breeds() []models.BreedOption { return r.breeds }

// States returns the state options in display order.
func (r *Reconciler) States() []models.StateOption { return r.states }

// ToggleBreed flips the named breed's selection and immediately re-derives
// the active breed criteria: breed choice is live, not staged. It reports
// whether the breed exists.
func (r *Reconciler) ToggleBreed(name string) bool {
	for i := range r.breeds {
		if r.breeds[i].Name == name {
			r.breeds[i].Selected = !r.breeds[i].Selected
			r.criteria.Breeds = r.SelectedBreedNames()
			return true
		}
	}
	return false
}

// ToggleState flips a state's selection in the staged slice. The active
// filter is untouched until the next submission.
func (r *Reconciler) ToggleState(code string) bool {
	for i := range r.states {
		if r.states[i].Code == code {
			r.states[i].Selected = !r.states[i].Selected
			return true
		}
	}
	return false
}

// SelectedBreedNames returns the names of all selected breeds in display
// order.
func (r *Reconciler) SelectedBreedNames() []string {
	var names []string
	for _, b := range r.breeds {
		if b.Selected {
			names = append(names, b.Name)
		}
	}
	return names
}

// SelectedStateCodes returns the codes of all selected states in display
// order.
func (r *Reconciler) SelectedStateCodes() []string {
	var codes []string
	for _, s := range r.states {
		if s.Selected {
			codes = append(codes, s.Code)
		}
	}
	return codes
}

// Submit validates the staged form and commits it. On success the age delta
// is folded into the active criteria and the location query for the zip-code
// lookup is returned. A location query with no criteria beyond its paging
// window is treated as an implicit reset of the location filter rather than
// being issued.
func (r *Reconciler) Submit(form FormValues) (SubmitResult, error) {
	if errs := Validate(form); len(errs) > 0 {
		return SubmitResult{}, &ValidationError{Fields: errs}
	}

	r.criteria.AgeMin = copyIntPtr(form.AgeMin)
	r.criteria.AgeMax = copyIntPtr(form.AgeMax)

	res := SubmitResult{
		Delta: FilterDelta{AgeMin: copyIntPtr(form.AgeMin), AgeMax: copyIntPtr(form.AgeMax)},
	}

	window := r.window.advance(form.ZipMode, r.zipTotal, form.CustomZipSize)
	query := &models.LocationSearchQuery{
		City:           strings.TrimSpace(form.City),
		States:         r.SelectedStateCodes(),
		GeoBoundingBox: buildBox(form),
		From:           window.From,
		Size:           window.Size,
	}

	if !query.HasCriteria() {
		r.window = DefaultZipWindow()
		r.zipTotal = 0
		r.criteria.ZipCodes = nil
		res.ImplicitReset = true
		res.Window = r.window
	} else {
		r.window = window
		res.LocationQuery = query
		res.Window = window
	}

	r.applied = r.snapshotKey(form)
	return res, nil
}

// ApplyZipCodes merges the zip codes returned by a location query into the
// active criteria and records the total match count for window paging.
func (r *Reconciler) ApplyZipCodes(zips []string, total int) {
	r.criteria.ZipCodes = zips
	if total < 0 {
		total = 0
	}
	r.zipTotal = total
}

// Window returns the zip-code paging window currently in effect.
func (r *Reconciler) Window() ZipWindow { return r.window }

// ZipTotal returns the last known count of matching zip codes.
func (r *Reconciler) ZipTotal() int { return r.zipTotal }

// Criteria returns a copy of the active filter criteria.
func (r *Reconciler) Criteria() FilterCriteria {
	return FilterCriteria{
		Breeds:   slices.Clone(r.criteria.Breeds),
		ZipCodes: slices.Clone(r.criteria.ZipCodes),
		AgeMin:   copyIntPtr(r.criteria.AgeMin),
		AgeMax:   copyIntPtr(r.criteria.AgeMax),
	}
}

// BuildQuery assembles the outgoing dog search query from the active
// criteria, a result offset, a page size, and a sort order.
func (r *Reconciler) BuildQuery(from, size int, sortCfg *models.SortConfig) models.DogSearchQuery {
	return models.DogSearchQuery{
		Breeds:   slices.Clone(r.criteria.Breeds),
		ZipCodes: slices.Clone(r.criteria.ZipCodes),
		AgeMin:   copyIntPtr(r.criteria.AgeMin),
		AgeMax:   copyIntPtr(r.criteria.AgeMax),
		From:     from,
		Size:     size,
		Sort:     sortCfg,
	}
}

// Reset restores the staged slice to its defaults: all state selections
// cleared, the zip window back to {0, default size}, and the applied ages and
// zip codes removed from the active criteria. The immediate breed slice is
// left alone.
func (r *Reconciler) Reset() {
	for i := range r.states {
		r.states[i].Selected = false
	}
	r.window = DefaultZipWindow()
	r.zipTotal = 0
	r.criteria.AgeMin = nil
	r.criteria.AgeMax = nil
	r.criteria.ZipCodes = nil
	r.applied = r.snapshotKey(defaultForm())
}

// Dirty reports whether the staged form plus the current state selections
// differ from the last successfully applied snapshot. It gates the submit
// action and decides whether a reset control is shown.
func (r *Reconciler) Dirty(form FormValues) bool {
	return r.snapshotKey(form) != r.applied
}

// snapshotKey renders a form plus the selected state codes into a canonical
// comparison key. State codes are sorted so the comparison is
// order-independent.
func (r *Reconciler) snapshotKey(form FormValues) string {
	codes := r.SelectedStateCodes()
	sort.Strings(codes)

	var b strings.Builder
	writePtr := func(label string, v any) {
		fmt.Fprintf(&b, "%s=%v;", label, v)
	}
	writePtr("ageMin", fmtIntPtr(form.AgeMin))
	writePtr("ageMax", fmtIntPtr(form.AgeMax))
	writePtr("city", strings.TrimSpace(form.City))
	writePtr("zipMode", form.ZipMode)
	writePtr("zipSize", fmtIntPtr(form.CustomZipSize))
	writePtr("boxMode", form.BoxMode)
	writePtr("top", fmtFloatPtr(form.Top))
	writePtr("left", fmtFloatPtr(form.Left))
	writePtr("bottom", fmtFloatPtr(form.Bottom))
	writePtr("right", fmtFloatPtr(form.Right))
	writePtr("aLat", fmtFloatPtr(form.PointALat))
	writePtr("aLon", fmtFloatPtr(form.PointALon))
	writePtr("bLat", fmtFloatPtr(form.PointBLat))
	writePtr("bLon", fmtFloatPtr(form.PointBLon))
	writePtr("states", strings.Join(codes, ","))
	return b.String()
}

// buildBox constructs the bounding box from an already-validated form.
// It returns nil for mode "none".
func buildBox(form FormValues) models.GeoBoundingBox {
	switch form.BoxMode {
	case BoxCardinal:
		return models.CardinalBox{
			Top:    *form.Top,
			Left:   *form.Left,
			Bottom: *form.Bottom,
			Right:  *form.Right,
		}
	case BoxCorner:
		box, err := models.NewDiagonalBox(
			models.Coordinates{Lat: *form.PointALat, Lon: *form.PointALon},
			models.Coordinates{Lat: *form.PointBLat, Lon: *form.PointBLon},
		)
		if err != nil {
			return nil
		}
		return box
	default:
		return nil
	}
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func fmtIntPtr(p *int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *p)
}

func fmtFloatPtr(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *p)
}

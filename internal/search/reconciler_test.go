package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogfetch/models"
)

func TestReconciler_SetBreedsSortsCaseInsensitively(t *testing.T) {
	r := NewReconciler()
	r.SetBreeds([]string{"Pug", "affenpinscher", "Boxer"})

	names := make([]string, 0, 3)
	for _, b := range r.Breeds() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"affenpinscher", "Boxer", "Pug"}, names)
}

func TestReconciler_ToggleBreedIsImmediate(t *testing.T) {
	r := NewReconciler()
	r.SetBreeds([]string{"Boxer", "Pug"})

	require.True(t, r.ToggleBreed("Pug"))
	assert.Equal(t, []string{"Pug"}, r.Criteria().Breeds,
		"breed selection must fold into the active criteria without a submit")

	require.True(t, r.ToggleBreed("Pug"))
	assert.Empty(t, r.Criteria().Breeds, "double toggle restores the original state")

	assert.False(t, r.ToggleBreed("Dachshund"), "unknown breed is rejected")
}

func TestReconciler_ToggleStateIsStaged(t *testing.T) {
	r := NewReconciler()

	require.True(t, r.ToggleState("CA"))
	assert.Equal(t, []string{"CA"}, r.SelectedStateCodes())
	assert.Nil(t, r.Criteria().ZipCodes, "staged selection must not touch the active filter")

	assert.False(t, r.ToggleState("XX"))
}

func TestReconciler_SubmitBuildsLocationQuery(t *testing.T) {
	r := NewReconciler()
	r.ToggleState("CA")
	r.ToggleState("OR")

	form := defaultForm()
	form.City = "  Portland  "
	form.AgeMin = intPtr(1)
	form.AgeMax = intPtr(9)

	res, err := r.Submit(form)
	require.NoError(t, err)
	require.NotNil(t, res.LocationQuery)

	assert.Equal(t, "Portland", res.LocationQuery.City, "city is trimmed")
	assert.Equal(t, []string{"CA", "OR"}, res.LocationQuery.States)
	assert.Equal(t, 0, res.LocationQuery.From)
	assert.Equal(t, DefaultZipPageSize, res.LocationQuery.Size)
	assert.False(t, res.ImplicitReset)

	require.NotNil(t, res.Delta.AgeMin)
	assert.Equal(t, 1, *res.Delta.AgeMin)

	crit := r.Criteria()
	require.NotNil(t, crit.AgeMax)
	assert.Equal(t, 9, *crit.AgeMax)
}

func TestReconciler_SubmitCanonicalizesCornerBox(t *testing.T) {
	r := NewReconciler()

	form := defaultForm()
	form.City = "Denver"
	form.BoxMode = BoxCorner
	form.PointALat = floatPtr(40)
	form.PointALon = floatPtr(-100)
	form.PointBLat = floatPtr(30)
	form.PointBLon = floatPtr(-90)

	res, err := r.Submit(form)
	require.NoError(t, err)
	require.NotNil(t, res.LocationQuery)

	box, ok := res.LocationQuery.GeoBoundingBox.(models.LowerDiagonalBox)
	require.True(t, ok, "P1 north-west of P2 must classify as the lower-diagonal form")
	assert.Equal(t, models.Coordinates{Lat: 40, Lon: -100}, box.TopLeft)
	assert.Equal(t, models.Coordinates{Lat: 30, Lon: -90}, box.BottomRight)
}

func TestReconciler_SubmitWithoutCriteriaIsImplicitReset(t *testing.T) {
	r := NewReconciler()
	r.ApplyZipCodes([]string{"97201"}, 1)

	form := defaultForm()
	form.City = "   " // whitespace-only city is no city filter
	form.AgeMin = intPtr(2)

	res, err := r.Submit(form)
	require.NoError(t, err)

	assert.True(t, res.ImplicitReset)
	assert.Nil(t, res.LocationQuery, "no query may be issued on an implicit reset")
	assert.Equal(t, DefaultZipWindow(), res.Window)
	assert.Nil(t, r.Criteria().ZipCodes)

	crit := r.Criteria()
	require.NotNil(t, crit.AgeMin, "the age delta still applies")
	assert.Equal(t, 2, *crit.AgeMin)
}

func TestReconciler_SubmitRejectsInvalidForm(t *testing.T) {
	r := NewReconciler()

	form := defaultForm()
	form.AgeMin = intPtr(8)
	form.AgeMax = intPtr(2)

	_, err := r.Submit(form)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, FieldAgeMax, vErr.Fields[0].Field)
}

func TestReconciler_ZipWindowAdvancesAcrossSubmits(t *testing.T) {
	r := NewReconciler()
	r.ToggleState("TX")

	form := defaultForm()
	_, err := r.Submit(form)
	require.NoError(t, err)
	r.ApplyZipCodes([]string{"73301"}, 60)

	form.ZipMode = ZipLoadNext
	res, err := r.Submit(form)
	require.NoError(t, err)
	assert.Equal(t, ZipWindow{From: 25, Size: 25}, res.Window)

	res, err = r.Submit(form)
	require.NoError(t, err)
	assert.Equal(t, ZipWindow{From: 50, Size: 25}, res.Window)

	// 50+25 >= 60: the next advance wraps to the first page.
	res, err = r.Submit(form)
	require.NoError(t, err)
	assert.Equal(t, ZipWindow{From: 0, Size: 25}, res.Window)
}

func TestReconciler_DirtyDetection(t *testing.T) {
	r := NewReconciler()
	form := defaultForm()

	assert.False(t, r.Dirty(form), "pristine form matches the initial snapshot")

	form.City = "Austin"
	assert.True(t, r.Dirty(form))

	r.ToggleState("TX")
	_, err := r.Submit(form)
	require.NoError(t, err)
	assert.False(t, r.Dirty(form), "submission records the applied snapshot")

	r.ToggleState("TX")
	assert.True(t, r.Dirty(form), "state selection change dirties the form")
}

func TestReconciler_DirtyIsStateOrderIndependent(t *testing.T) {
	r := NewReconciler()
	form := defaultForm()
	form.City = "Reno"

	r.ToggleState("NV")
	r.ToggleState("CA")
	_, err := r.Submit(form)
	require.NoError(t, err)

	// Re-select the same pair in the opposite order.
	r.ToggleState("NV")
	r.ToggleState("CA")
	r.ToggleState("CA")
	r.ToggleState("NV")
	assert.False(t, r.Dirty(form))
}

func TestReconciler_Reset(t *testing.T) {
	r := NewReconciler()
	r.SetBreeds([]string{"Pug"})
	r.ToggleBreed("Pug")
	r.ToggleState("WA")

	form := defaultForm()
	form.AgeMax = intPtr(10)
	_, err := r.Submit(form)
	require.NoError(t, err)
	r.ApplyZipCodes([]string{"98101"}, 12)

	r.Reset()

	assert.Empty(t, r.SelectedStateCodes())
	assert.Equal(t, DefaultZipWindow(), r.Window())
	assert.Zero(t, r.ZipTotal())
	crit := r.Criteria()
	assert.Nil(t, crit.AgeMax)
	assert.Nil(t, crit.ZipCodes)
	assert.Equal(t, []string{"Pug"}, crit.Breeds, "the immediate breed slice survives a reset")
	assert.False(t, r.Dirty(defaultForm()))
}

func TestReconciler_BuildQuery(t *testing.T) {
	r := NewReconciler()
	r.SetBreeds([]string{"Boxer"})
	r.ToggleBreed("Boxer")
	r.ApplyZipCodes([]string{"10001", "10002"}, 2)

	sortCfg := &models.SortConfig{Field: models.SortByBreed, Direction: models.SortAsc}
	q := r.BuildQuery(50, 25, sortCfg)

	assert.Equal(t, []string{"Boxer"}, q.Breeds)
	assert.Equal(t, []string{"10001", "10002"}, q.ZipCodes)
	assert.Equal(t, 50, q.From)
	assert.Equal(t, 25, q.Size)
	assert.Equal(t, "breed:asc", q.Sort.String())
}

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func fieldsOf(errs []FieldError) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidate_AgeBounds(t *testing.T) {
	tests := []struct {
		name       string
		ageMin     *int
		ageMax     *int
		wantFields []string
	}{
		{name: "both empty", wantFields: nil},
		{name: "valid pair", ageMin: intPtr(2), ageMax: intPtr(8), wantFields: nil},
		{name: "equal bounds", ageMin: intPtr(5), ageMax: intPtr(5), wantFields: nil},
		{name: "only min", ageMin: intPtr(3), wantFields: nil},
		{name: "negative min", ageMin: intPtr(-1), wantFields: []string{FieldAgeMin}},
		{name: "negative max", ageMax: intPtr(-2), wantFields: []string{FieldAgeMax}},
		{name: "max below min", ageMin: intPtr(7), ageMax: intPtr(3), wantFields: []string{FieldAgeMax}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := defaultForm()
			form.AgeMin = tt.ageMin
			form.AgeMax = tt.ageMax
			errs := Validate(form)
			assert.Equal(t, tt.wantFields, fieldsOf(errs))
		})
	}
}

func TestValidate_CustomZipSize(t *testing.T) {
	tests := []struct {
		name      string
		size      *int
		wantField string
	}{
		{name: "missing size", size: nil, wantField: FieldZipSize},
		{name: "below one", size: intPtr(0), wantField: FieldZipSize},
		{name: "above maximum", size: intPtr(MaxCustomZipSize + 1), wantField: FieldZipSize},
		{name: "exactly maximum", size: intPtr(MaxCustomZipSize)},
		{name: "ordinary size", size: intPtr(50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := defaultForm()
			form.ZipMode = ZipLoadCustom
			form.CustomZipSize = tt.size
			errs := Validate(form)
			if tt.wantField == "" {
				assert.Empty(t, errs)
			} else {
				require.Len(t, errs, 1)
				assert.Equal(t, tt.wantField, errs[0].Field)
			}
		})
	}
}

func TestValidate_CustomSizeIgnoredInOtherModes(t *testing.T) {
	form := defaultForm()
	form.ZipMode = ZipLoadNext
	form.CustomZipSize = intPtr(MaxCustomZipSize * 10)
	assert.Empty(t, Validate(form))
}

func TestValidate_CardinalBox(t *testing.T) {
	newForm := func(top, left, bottom, right float64) FormValues {
		form := defaultForm()
		form.BoxMode = BoxCardinal
		form.Top = floatPtr(top)
		form.Left = floatPtr(left)
		form.Bottom = floatPtr(bottom)
		form.Right = floatPtr(right)
		return form
	}

	t.Run("continental box passes", func(t *testing.T) {
		assert.Empty(t, Validate(newForm(49, -125, 25, -66)))
	})

	t.Run("inverted on both axes fails per axis", func(t *testing.T) {
		errs := Validate(newForm(10, 5, 20, 0))
		assert.ElementsMatch(t, []string{FieldBoxBottom, FieldBoxLeft}, fieldsOf(errs))
	})

	t.Run("missing edges are each reported", func(t *testing.T) {
		form := defaultForm()
		form.BoxMode = BoxCardinal
		form.Top = floatPtr(49)
		errs := Validate(form)
		assert.ElementsMatch(t, []string{FieldBoxLeft, FieldBoxBottom, FieldBoxRight}, fieldsOf(errs))
	})

	t.Run("latitude out of range", func(t *testing.T) {
		errs := Validate(newForm(95, -125, 25, -66))
		require.Len(t, errs, 1)
		assert.Equal(t, FieldBox, errs[0].Field)
	})
}

func TestValidate_CornerBox(t *testing.T) {
	newForm := func(aLat, aLon, bLat, bLon float64) FormValues {
		form := defaultForm()
		form.BoxMode = BoxCorner
		form.PointALat = floatPtr(aLat)
		form.PointALon = floatPtr(aLon)
		form.PointBLat = floatPtr(bLat)
		form.PointBLon = floatPtr(bLon)
		return form
	}

	t.Run("distinct corners pass", func(t *testing.T) {
		assert.Empty(t, Validate(newForm(40, -100, 30, -90)))
	})

	t.Run("shared latitude fails", func(t *testing.T) {
		errs := Validate(newForm(40, -100, 40, -90))
		require.Len(t, errs, 1)
		assert.Equal(t, FieldPointB, errs[0].Field)
	})

	t.Run("shared longitude fails", func(t *testing.T) {
		errs := Validate(newForm(40, -100, 30, -100))
		require.Len(t, errs, 1)
		assert.Equal(t, FieldPointB, errs[0].Field)
	})

	t.Run("half a point missing", func(t *testing.T) {
		form := newForm(40, -100, 30, -90)
		form.PointBLon = nil
		errs := Validate(form)
		require.Len(t, errs, 1)
		assert.Equal(t, FieldPointB, errs[0].Field)
	})
}

func TestRawForm_ParseCollectsNumericErrors(t *testing.T) {
	raw := RawForm{
		AgeMin:        "two",
		AgeMax:        "8",
		CustomZipSize: "lots",
		Top:           "49.5",
		Left:          "west",
	}

	form, errs := raw.Parse()
	assert.ElementsMatch(t, []string{FieldAgeMin, FieldZipSize, FieldBoxLeft}, fieldsOf(errs))
	require.NotNil(t, form.AgeMax)
	assert.Equal(t, 8, *form.AgeMax)
	require.NotNil(t, form.Top)
	assert.InDelta(t, 49.5, *form.Top, 1e-9)
}

func TestRawForm_ParseDefaultsModes(t *testing.T) {
	form, errs := RawForm{}.Parse()
	require.Empty(t, errs)
	assert.Equal(t, ZipLoadFirst, form.ZipMode)
	assert.Equal(t, BoxNone, form.BoxMode)
}

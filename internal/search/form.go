// Package search implements the client's filter/search state machine.
//
// Two state slices with deliberately different commit semantics live here:
// breed selection is the immediate slice (a toggle takes effect on the active
// filter criteria right away), while every other filter field is staged in a
// form and merged into the active criteria only on an explicit, validated
// submission. The [Reconciler] owns both slices, diffs the staged form
// against the last-applied snapshot, and produces the normalized queries sent
// to the remote catalog.
package search

import (
	"strconv"
	"strings"
)

// ZipLoadMode selects how the zip-code paging window moves on submission.
type ZipLoadMode string

const (
	// ZipLoadFirst returns to the first window with the default size.
	ZipLoadFirst ZipLoadMode = "first"
	// ZipLoadNext advances the window; past the end it wraps to offset 0.
	ZipLoadNext ZipLoadMode = "next"
	// ZipLoadPrevious steps the window back, clamping at offset 0.
	ZipLoadPrevious ZipLoadMode = "previous"
	// ZipLoadCustom starts over with a caller-chosen window size.
	ZipLoadCustom ZipLoadMode = "custom"
)

// BoxMode selects which bounding-box shape the form supplies, if any.
type BoxMode string

const (
	BoxNone BoxMode = "none"
	// BoxCardinal expects the four edge fields (top/left/bottom/right).
	BoxCardinal BoxMode = "cardinal"
	// BoxCorner expects two diagonal corner points.
	BoxCorner BoxMode = "corner"
)

// FormValues is the typed, staged filter form. Nil pointers mean the field
// was left blank.
type FormValues struct {
	AgeMin *int
	AgeMax *int

	// City is free text; whitespace-only input means no city filter.
	City string

	ZipMode       ZipLoadMode
	CustomZipSize *int

	BoxMode BoxMode

	// Cardinal edges, used when BoxMode is BoxCardinal.
	Top    *float64
	Left   *float64
	Bottom *float64
	Right  *float64

	// Diagonal corner points, used when BoxMode is BoxCorner.
	PointALat *float64
	PointALon *float64
	PointBLat *float64
	PointBLon *float64
}

// RawForm carries the filter form exactly as typed, before any numeric
// conversion. Parse turns it into [FormValues], reporting a field-scoped
// error for every value that is not numeric.
type RawForm struct {
	AgeMin, AgeMax string
	City           string
	ZipMode        ZipLoadMode
	CustomZipSize  string
	BoxMode        BoxMode

	Top, Left, Bottom, Right                   string
	PointALat, PointALon, PointBLat, PointBLon string
}

// Parse converts the raw form into typed values. Blank inputs become nil.
// Conversion failures are collected per field; when any are present the
// returned FormValues must not be submitted.
func (r RawForm) Parse() (FormValues, []FieldError) {
	var errs []FieldError

	form := FormValues{
		City:    r.City,
		ZipMode: r.ZipMode,
		BoxMode: r.BoxMode,
	}
	if form.ZipMode == "" {
		form.ZipMode = ZipLoadFirst
	}
	if form.BoxMode == "" {
		form.BoxMode = BoxNone
	}

	form.AgeMin = parseOptionalInt(FieldAgeMin, r.AgeMin, &errs)
	form.AgeMax = parseOptionalInt(FieldAgeMax, r.AgeMax, &errs)
	form.CustomZipSize = parseOptionalInt(FieldZipSize, r.CustomZipSize, &errs)

	form.Top = parseOptionalFloat(FieldBoxTop, r.Top, &errs)
	form.Left = parseOptionalFloat(FieldBoxLeft, r.Left, &errs)
	form.Bottom = parseOptionalFloat(FieldBoxBottom, r.Bottom, &errs)
	form.Right = parseOptionalFloat(FieldBoxRight, r.Right, &errs)

	form.PointALat = parseOptionalFloat(FieldPointA, r.PointALat, &errs)
	form.PointALon = parseOptionalFloat(FieldPointA, r.PointALon, &errs)
	form.PointBLat = parseOptionalFloat(FieldPointB, r.PointBLat, &errs)
	form.PointBLon = parseOptionalFloat(FieldPointB, r.PointBLon, &errs)

	return form, errs
}

func parseOptionalInt(field, raw string, errs *[]FieldError) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, FieldError{Field: field, Message: "must be a whole number"})
		return nil
	}
	return &n
}

func parseOptionalFloat(field, raw string, errs *[]FieldError) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, FieldError{Field: field, Message: "must be a number"})
		return nil
	}
	return &f
}

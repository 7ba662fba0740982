package search

import (
	"errors"
	"fmt"
	"strings"

	"dogfetch/models"
)

// Field names used to scope validation errors to form inputs.
const (
	FieldAgeMin    = "ageMin"
	FieldAgeMax    = "ageMax"
	FieldZipSize   = "zipSize"
	FieldBoxTop    = "top"
	FieldBoxLeft   = "left"
	FieldBoxBottom = "bottom"
	FieldBoxRight  = "right"
	FieldBox       = "boundingBox"
	FieldPointA    = "pointA"
	FieldPointB    = "pointB"
)

// FieldError is a single validation failure scoped to one form field,
// surfaced inline on the offending input.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError aggregates the field errors of a failed submission.
// Validation fails closed: one violation is enough to block the submit.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validate checks the staged form. Rules run in order: age bounds
// non-negative, age ordering, custom zip size presence and ceiling, then the
// bounding-box shape for the selected mode. Every violated rule contributes
// one field-scoped error.
func Validate(form FormValues) []FieldError {
	var errs []FieldError

	if form.AgeMin != nil && *form.AgeMin < 0 {
		errs = append(errs, FieldError{Field: FieldAgeMin, Message: "must not be negative"})
	}
	if form.AgeMax != nil && *form.AgeMax < 0 {
		errs = append(errs, FieldError{Field: FieldAgeMax, Message: "must not be negative"})
	}
	if form.AgeMin != nil && form.AgeMax != nil && *form.AgeMax < *form.AgeMin {
		errs = append(errs, FieldError{Field: FieldAgeMax, Message: "must be at least the minimum age"})
	}

	if form.ZipMode == ZipLoadCustom {
		switch {
		case form.CustomZipSize == nil:
			errs = append(errs, FieldError{Field: FieldZipSize, Message: "size is required for a custom batch"})
		case *form.CustomZipSize < 1:
			errs = append(errs, FieldError{Field: FieldZipSize, Message: "must be at least 1"})
		case *form.CustomZipSize > MaxCustomZipSize:
			errs = append(errs, FieldError{
				Field:   FieldZipSize,
				Message: fmt.Sprintf("cannot exceed %d", MaxCustomZipSize),
			})
		}
	}

	errs = append(errs, validateBox(form)...)

	return errs
}

func validateBox(form FormValues) []FieldError {
	switch form.BoxMode {
	case BoxNone, "":
		return nil
	case BoxCardinal:
		return validateCardinalBox(form)
	case BoxCorner:
		return validateCornerBox(form)
	default:
		return []FieldError{{Field: FieldBox, Message: "unknown bounding box mode"}}
	}
}

func validateCardinalBox(form FormValues) []FieldError {
	var errs []FieldError
	edges := []struct {
		field string
		value *float64
	}{
		{FieldBoxTop, form.Top},
		{FieldBoxLeft, form.Left},
		{FieldBoxBottom, form.Bottom},
		{FieldBoxRight, form.Right},
	}
	for _, e := range edges {
		if e.value == nil {
			errs = append(errs, FieldError{Field: e.field, Message: "required for a cardinal box"})
		}
	}
	if len(errs) > 0 {
		return errs
	}

	box := models.CardinalBox{Top: *form.Top, Left: *form.Left, Bottom: *form.Bottom, Right: *form.Right}
	if err := box.Validate(); err != nil {
		return cardinalBoxShapeErrors(box, err)
	}
	return nil
}

// cardinalBoxShapeErrors attributes a shape violation to the axes that
// caused it, so each broken axis gets its own inline message.
func cardinalBoxShapeErrors(box models.CardinalBox, err error) []FieldError {
	if errors.Is(err, models.ErrCoordinatesOutOfRange) {
		return []FieldError{{Field: FieldBox, Message: "coordinates out of range"}}
	}

	var errs []FieldError
	if box.Bottom >= box.Top {
		errs = append(errs, FieldError{Field: FieldBoxBottom, Message: "must be south of top"})
	}
	if box.Left >= box.Right {
		errs = append(errs, FieldError{Field: FieldBoxLeft, Message: "must be west of right"})
	}
	if len(errs) == 0 {
		errs = append(errs, FieldError{Field: FieldBox, Message: err.Error()})
	}
	return errs
}

func validateCornerBox(form FormValues) []FieldError {
	var errs []FieldError
	if form.PointALat == nil || form.PointALon == nil {
		errs = append(errs, FieldError{Field: FieldPointA, Message: "both coordinates are required"})
	}
	if form.PointBLat == nil || form.PointBLon == nil {
		errs = append(errs, FieldError{Field: FieldPointB, Message: "both coordinates are required"})
	}
	if len(errs) > 0 {
		return errs
	}

	a := models.Coordinates{Lat: *form.PointALat, Lon: *form.PointALon}
	b := models.Coordinates{Lat: *form.PointBLat, Lon: *form.PointBLon}
	if _, err := models.NewDiagonalBox(a, b); err != nil {
		if errors.Is(err, models.ErrDegenerateBox) {
			return []FieldError{{Field: FieldPointB, Message: "corners must differ in both latitude and longitude"}}
		}
		return []FieldError{{Field: FieldBox, Message: "coordinates out of range"}}
	}
	return nil
}

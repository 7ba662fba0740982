package models

import "errors"

// Geographic coordinate limits accepted by the catalog location endpoints.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

var (
	// ErrDegenerateBox is returned when a bounding box does not enclose a
	// region with strictly positive width and height.
	ErrDegenerateBox = errors.New("bounding box has no area")

	// ErrCoordinatesOutOfRange is returned when a latitude or longitude is
	// outside the valid geographic range.
	ErrCoordinatesOutOfRange = errors.New("coordinates out of range")
)

// Location represents a zip-code record returned by the catalog location
// endpoints.
type Location struct {
	// ZipCode is the five-digit zip code.
	ZipCode string `json:"zip_code"`

	// Latitude is the zip code's centroid latitude.
	Latitude float64 `json:"latitude"`

	// Longitude is the zip code's centroid longitude.
	Longitude float64 `json:"longitude"`

	// City is the primary city of the zip code.
	City string `json:"city"`

	// State is the two-letter state code.
	State string `json:"state"`

	// County is the county name.
	County string `json:"county"`
}

// Coordinates is a single geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinates) inRange() bool {
	return c.Lat >= MinLatitude && c.Lat <= MaxLatitude &&
		c.Lon >= MinLongitude && c.Lon <= MaxLongitude
}

// GeoBoundingBox is a geographic rectangle sent to the location search
// endpoint. It is a closed union of three shapes: [CardinalBox] expressed by
// four edges, and two diagonal forms expressed by opposite corner points
// ([UpperDiagonalBox], [LowerDiagonalBox]). Each variant marshals to the wire
// shape the endpoint expects for that form.
type GeoBoundingBox interface {
	// Validate reports whether the box satisfies its shape invariant:
	// strictly positive width and height, all coordinates in range.
	Validate() error

	boundingBox()
}

// CardinalBox is a bounding box given by its four edges.
// Top and Bottom are latitudes, Left and Right are longitudes.
type CardinalBox struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

func (CardinalBox) boundingBox() {}

// Validate requires bottom < top and left < right, with every edge inside
// the geographic coordinate range.
func (b CardinalBox) Validate() error {
	if b.Top < MinLatitude || b.Top > MaxLatitude ||
		b.Bottom < MinLatitude || b.Bottom > MaxLatitude ||
		b.Left < MinLongitude || b.Left > MaxLongitude ||
		b.Right < MinLongitude || b.Right > MaxLongitude {
		return ErrCoordinatesOutOfRange
	}
	if b.Bottom >= b.Top || b.Left >= b.Right {
		return ErrDegenerateBox
	}
	return nil
}

// UpperDiagonalBox is a bounding box given by its bottom-left and top-right
// corners.
type UpperDiagonalBox struct {
	BottomLeft Coordinates `json:"bottom_left"`
	TopRight   Coordinates `json:"top_right"`
}

func (UpperDiagonalBox) boundingBox() {}

// Validate requires the bottom-left corner to be strictly south and west of
// the top-right corner.
func (b UpperDiagonalBox) Validate() error {
	if !b.BottomLeft.inRange() || !b.TopRight.inRange() {
		return ErrCoordinatesOutOfRange
	}
	if b.BottomLeft.Lat >= b.TopRight.Lat || b.BottomLeft.Lon >= b.TopRight.Lon {
		return ErrDegenerateBox
	}
	return nil
}

// LowerDiagonalBox is a bounding box given by its top-left and bottom-right
// corners.
type LowerDiagonalBox struct {
	TopLeft     Coordinates `json:"top_left"`
	BottomRight Coordinates `json:"bottom_right"`
}

func (LowerDiagonalBox) boundingBox() {}

// Validate requires the top-left corner to be strictly north and west of the
// bottom-right corner.
func (b LowerDiagonalBox) Validate() error {
	if !b.TopLeft.inRange() || !b.BottomRight.inRange() {
		return ErrCoordinatesOutOfRange
	}
	if b.BottomRight.Lat >= b.TopLeft.Lat || b.TopLeft.Lon >= b.BottomRight.Lon {
		return ErrDegenerateBox
	}
	return nil
}

// NewDiagonalBox canonicalizes two opposite corner points into one of the two
// diagonal box forms. The point holding both the smaller latitude and the
// smaller longitude becomes the bottom-left corner of an [UpperDiagonalBox];
// when the smaller-latitude point holds the larger longitude the pair is
// classified as a [LowerDiagonalBox] instead. The two points must not share a
// latitude or a longitude.
func NewDiagonalBox(p1, p2 Coordinates) (GeoBoundingBox, error) {
	if !p1.inRange() || !p2.inRange() {
		return nil, ErrCoordinatesOutOfRange
	}
	if p1.Lat == p2.Lat || p1.Lon == p2.Lon {
		return nil, ErrDegenerateBox
	}

	south, north := p1, p2
	if south.Lat > north.Lat {
		south, north = north, south
	}

	if south.Lon < north.Lon {
		return UpperDiagonalBox{BottomLeft: south, TopRight: north}, nil
	}
	return LowerDiagonalBox{TopLeft: north, BottomRight: south}, nil
}

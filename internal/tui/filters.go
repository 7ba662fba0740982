package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"dogfetch/internal/search"
)

// Indexes into filtersModel.inputs.
const (
	fieldAgeMin = iota
	fieldAgeMax
	fieldCity
	fieldZipSize
	fieldBoxTop
	fieldBoxLeft
	fieldBoxBottom
	fieldBoxRight
	fieldPointALat
	fieldPointALon
	fieldPointBLat
	fieldPointBLon
	fieldCount
)

// Virtual rows in the tab order that are not text inputs; left/right cycles
// their value.
const (
	rowZipMode = -1
	rowBoxMode = -2
)

var fieldLabels = [fieldCount]string{
	"Age min", "Age max", "City", "Zip page size",
	"Box top", "Box left", "Box bottom", "Box right",
	"Point A lat", "Point A lon", "Point B lat", "Point B lon",
}

var fieldNames = [fieldCount]string{
	search.FieldAgeMin, search.FieldAgeMax, "", search.FieldZipSize,
	search.FieldBoxTop, search.FieldBoxLeft, search.FieldBoxBottom, search.FieldBoxRight,
	search.FieldPointA, search.FieldPointA, search.FieldPointB, search.FieldPointB,
}

var zipModes = []search.ZipLoadMode{
	search.ZipLoadFirst, search.ZipLoadNext, search.ZipLoadPrevious, search.ZipLoadCustom,
}

var boxModes = []search.BoxMode{search.BoxNone, search.BoxCardinal, search.BoxCorner}

// filtersModel is the staged filter form. Text fields hold raw input until
// submission; the zip-load and box modes are cycled in place. The tab order
// is recomputed as modes change so hidden fields are skipped.
type filtersModel struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	zipMode int
	boxMode int

	fieldErrs  []search.FieldError
	submitting bool
	status     string
}

func newFiltersModel() filtersModel {
	m := filtersModel{}
	for i := range m.inputs {
		in := textinput.New()
		in.CharLimit = 24
		in.Width = 16
		m.inputs[i] = in
	}
	m.inputs[fieldCity].CharLimit = 64
	m.inputs[fieldCity].Width = 30
	m.inputs[fieldAgeMin].Focus()
	return m
}

// rows returns the active tab order: input indexes plus the two virtual mode
// rows, with fields irrelevant to the current modes left out.
func (m filtersModel) rows() []int {
	rows := []int{fieldAgeMin, fieldAgeMax, fieldCity, rowZipMode}
	if zipModes[m.zipMode] == search.ZipLoadCustom {
		rows = append(rows, fieldZipSize)
	}
	rows = append(rows, rowBoxMode)
	switch boxModes[m.boxMode] {
	case search.BoxCardinal:
		rows = append(rows, fieldBoxTop, fieldBoxLeft, fieldBoxBottom, fieldBoxRight)
	case search.BoxCorner:
		rows = append(rows, fieldPointALat, fieldPointALon, fieldPointBLat, fieldPointBLon)
	}
	return rows
}

// currentRow returns the focused row id, input index or virtual.
func (m filtersModel) currentRow() int {
	rows := m.rows()
	if m.focus < 0 || m.focus >= len(rows) {
		return rows[0]
	}
	return rows[m.focus]
}

func (m *filtersModel) setFocus(pos int) {
	rows := m.rows()
	if cur := m.currentRow(); cur >= 0 {
		m.inputs[cur].Blur()
	}
	m.focus = ((pos % len(rows)) + len(rows)) % len(rows)
	if next := m.currentRow(); next >= 0 {
		m.inputs[next].Focus()
	}
}

func (m *filtersModel) focusNext() { m.setFocus(m.focus + 1) }
func (m *filtersModel) focusPrev() { m.setFocus(m.focus - 1) }

// cycleMode shifts the focused virtual row by delta and re-clamps focus, since
// changing a mode can grow or shrink the tab order.
func (m *filtersModel) cycleMode(delta int) {
	switch m.currentRow() {
	case rowZipMode:
		m.zipMode = ((m.zipMode+delta)%len(zipModes) + len(zipModes)) % len(zipModes)
	case rowBoxMode:
		m.boxMode = ((m.boxMode+delta)%len(boxModes) + len(boxModes)) % len(boxModes)
	default:
		return
	}
	if rows := m.rows(); m.focus >= len(rows) {
		m.focus = len(rows) - 1
	}
}

// rawForm snapshots the inputs into the form the reconciler understands.
func (m filtersModel) rawForm() search.RawForm {
	return search.RawForm{
		AgeMin:        m.inputs[fieldAgeMin].Value(),
		AgeMax:        m.inputs[fieldAgeMax].Value(),
		City:          m.inputs[fieldCity].Value(),
		ZipMode:       zipModes[m.zipMode],
		CustomZipSize: m.inputs[fieldZipSize].Value(),
		BoxMode:       boxModes[m.boxMode],
		Top:           m.inputs[fieldBoxTop].Value(),
		Left:          m.inputs[fieldBoxLeft].Value(),
		Bottom:        m.inputs[fieldBoxBottom].Value(),
		Right:         m.inputs[fieldBoxRight].Value(),
		PointALat:     m.inputs[fieldPointALat].Value(),
		PointALon:     m.inputs[fieldPointALon].Value(),
		PointBLat:     m.inputs[fieldPointBLat].Value(),
		PointBLon:     m.inputs[fieldPointBLon].Value(),
	}
}

func (m *filtersModel) clear() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.zipMode = 0
	m.boxMode = 0
	m.fieldErrs = nil
	m.status = ""
	m.setFocus(0)
}

func (m filtersModel) errFor(field string) string {
	if field == "" {
		return ""
	}
	for _, fe := range m.fieldErrs {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (m filtersModel) view(dirty bool, selectedStates []string) string {
	var b strings.Builder
	title := "Filters"
	if dirty {
		title += " (modified)"
	}
	b.WriteString(viewTitle(title))
	b.WriteString("\n")

	focused := m.currentRow()

	writeField := func(i int) {
		b.WriteString(fieldLabels[i])
		b.WriteString(strings.Repeat(" ", 14-len(fieldLabels[i])))
		b.WriteString("[" + m.inputs[i].View() + "]")
		if msg := m.errFor(fieldNames[i]); msg != "" {
			b.WriteString("  ! " + msg)
		}
		b.WriteString("\n")
	}
	writeMode := func(row int, label, value string) {
		marker := "  "
		if focused == row {
			marker = "> "
		}
		b.WriteString(label + marker + "< " + value + " >\n")
	}

	writeField(fieldAgeMin)
	writeField(fieldAgeMax)
	b.WriteString("\n")
	writeField(fieldCity)
	if len(selectedStates) > 0 {
		b.WriteString("States        " + strings.Join(selectedStates, ", ") + "\n")
	}
	writeMode(rowZipMode, "Zip paging  ", string(zipModes[m.zipMode]))
	if zipModes[m.zipMode] == search.ZipLoadCustom {
		writeField(fieldZipSize)
	}

	writeMode(rowBoxMode, "Box shape   ", string(boxModes[m.boxMode]))
	switch boxModes[m.boxMode] {
	case search.BoxCardinal:
		writeField(fieldBoxTop)
		writeField(fieldBoxLeft)
		writeField(fieldBoxBottom)
		writeField(fieldBoxRight)
	case search.BoxCorner:
		writeField(fieldPointALat)
		writeField(fieldPointALon)
		writeField(fieldPointBLat)
		writeField(fieldPointBLon)
	}

	if msg := m.errFor(search.FieldBox); msg != "" {
		b.WriteString("\n! " + msg + "\n")
	}
	if m.submitting {
		b.WriteString("\nApplying...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(
		"tab next field  ←/→ change mode  enter apply  esc back"))
	return b.String()
}

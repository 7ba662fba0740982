package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"dogfetch/internal/search"
	"dogfetch/models"
)

type pickerKind int

const (
	pickBreeds pickerKind = iota
	pickStates
)

// pickerRow is one selectable line of a picker: breed name or "Name (CODE)".
type pickerRow struct {
	label    string
	value    string
	selected bool
}

// pickerModel is the shared breed/state selector: a search input narrows the
// option list, selected entries float to their own section, and enter toggles
// the row under the cursor. Breed toggles take effect immediately; state
// toggles stay staged until the filter form is submitted.
type pickerModel struct {
	kind   pickerKind
	search textinput.Model
	rows   []pickerRow
	idx    int
}

func newPickerModel(kind pickerKind) pickerModel {
	in := textinput.New()
	in.Placeholder = "type to search"
	in.CharLimit = 40
	in.Width = 30
	in.Focus()
	return pickerModel{kind: kind, search: in}
}

// refresh rebuilds the visible rows from the reconciler's option slices,
// selected group first, both filtered by the current search text.
func (m *pickerModel) refresh(breeds []models.BreedOption, states []models.StateOption) {
	needle := m.search.Value()
	m.rows = m.rows[:0]

	switch m.kind {
	case pickBreeds:
		available, selected := search.FilterBreedOptions(breeds, needle)
		for _, opt := range selected {
			m.rows = append(m.rows, pickerRow{label: opt.Name, value: opt.Name, selected: true})
		}
		for _, opt := range available {
			m.rows = append(m.rows, pickerRow{label: opt.Name, value: opt.Name})
		}
	case pickStates:
		available, selected := search.FilterStateOptions(states, needle)
		for _, opt := range selected {
			m.rows = append(m.rows, pickerRow{label: opt.Name + " (" + opt.Code + ")", value: opt.Code, selected: true})
		}
		for _, opt := range available {
			m.rows = append(m.rows, pickerRow{label: opt.Name + " (" + opt.Code + ")", value: opt.Code})
		}
	}

	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m pickerModel) currentRow() (pickerRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return pickerRow{}, false
	}
	return m.rows[m.idx], true
}

func (m pickerModel) View() string {
	var b strings.Builder
	switch m.kind {
	case pickBreeds:
		b.WriteString(viewTitle("Breeds"))
	case pickStates:
		b.WriteString(viewTitle("States"))
	}

	b.WriteString("\nSearch [" + m.search.View() + "]\n\n")

	if len(m.rows) == 0 {
		b.WriteString("No matches.\n")
	}
	inSelected := false
	for i, row := range m.rows {
		if i == 0 {
			if row.selected {
				b.WriteString("Selected:\n")
				inSelected = true
			} else {
				b.WriteString("Available:\n")
			}
		} else if inSelected && !row.selected {
			b.WriteString("\nAvailable:\n")
			inSelected = false
		}
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		mark := "[ ] "
		if row.selected {
			mark = "[x] "
		}
		b.WriteString(cursor + mark + row.label + "\n")
	}

	hint := "enter toggle  ↑/↓ move  esc back"
	if m.kind == pickStates {
		hint += "  (applied on filter submit)"
	}
	b.WriteString("\n" + helpStyle.Render(hint))
	return b.String()
}

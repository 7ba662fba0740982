package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"dogfetch/models"
)

// favoritesModel lists the liked dogs resolved to full records.
type favoritesModel struct {
	dogs    []models.Dog
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newFavoritesModel() favoritesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return favoritesModel{spinner: s}
}

func (m favoritesModel) current() (models.Dog, bool) {
	if len(m.dogs) == 0 || m.idx < 0 || m.idx >= len(m.dogs) {
		return models.Dog{}, false
	}
	return m.dogs[m.idx], true
}

func (m favoritesModel) View() string {
	var b strings.Builder
	header := "Favorites"
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(viewTitle(header))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.dogs) == 0:
		b.WriteString("No favorites yet. Like some dogs first, then come back for a match.\n")
	default:
		for i, dog := range m.dogs {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + dogLine(dog, true) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("space unlike  m match  c copy  esc back  q quit"))
	return b.String()
}

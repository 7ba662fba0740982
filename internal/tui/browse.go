package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"dogfetch/internal/pagination"
	"dogfetch/models"
)

// browseModel is the main results screen: the current page of dogs, the total
// match counts, and the pagination window.
type browseModel struct {
	dogs    []models.Dog
	summary models.SearchResultsSummary
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newBrowseModel() browseModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return browseModel{spinner: s, loading: true}
}

func (m browseModel) current() (models.Dog, bool) {
	if len(m.dogs) == 0 || m.idx < 0 || m.idx >= len(m.dogs) {
		return models.Dog{}, false
	}
	return m.dogs[m.idx], true
}

// renderWindow draws the compact page sequence, e.g. "1 … 9 [10] 11 … 20".
func renderWindow(items []pagination.Item, current int) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		switch {
		case it.Ellipsis:
			parts = append(parts, "…")
		case it.Page == current:
			parts = append(parts, "["+strconv.Itoa(it.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(it.Page))
		}
	}
	return strings.Join(parts, " ")
}

func dogLine(dog models.Dog, liked bool) string {
	heart := "  "
	if liked {
		heart = likedStyle.Render("♥ ")
	}
	return fmt.Sprintf("%s%s  %s, %s  (zip %s)",
		heart, fitText(dog.Name, 18), fitText(dog.Breed, 28), plural(dog.Age, "year"), dog.ZipCode)
}

func (m browseModel) view(isLiked func(string) bool, pager *pagination.Controller, sortCfg models.SortConfig, filterLine string) string {
	var b strings.Builder
	header := "Dogfetch"
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(viewTitle(header))

	if filterLine != "" {
		b.WriteString(helpStyle.Render(filterLine) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s found  ·  sort %s\n\n", plural(m.summary.Dogs, "dog"), sortCfg))

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.dogs) == 0:
		b.WriteString("No dogs match the current filters.\n")
	default:
		for i, dog := range m.dogs {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + dogLine(dog, isLiked(dog.ID)) + "\n")
		}
	}

	if w := renderWindow(pager.Window(), pager.Current()); w != "" {
		b.WriteString("\nPage " + w + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(
		"space like  ←/→ page  b breeds  s states  g filters  o sort  r reverse  f favorites  m match  c copy  L logout  q quit"))
	return b.String()
}

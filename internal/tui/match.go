package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"dogfetch/models"
)

// matchModel shows the matchmaker's pick. The celebration banner appears only
// on the first visit within the visited flag's lifetime.
type matchModel struct {
	dog        models.Dog
	firstVisit bool
	loading    bool
	spinner    spinner.Model
	status     string
}

func newMatchModel() matchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return matchModel{spinner: s}
}

func (m matchModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Your Match"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Finding your match...\n")
		return b.String()
	}

	if m.firstVisit {
		b.WriteString(bannerStyle.Render("🎉 Congratulations on your first match! 🎉") + "\n\n")
	}

	b.WriteString(fmt.Sprintf("Meet %s!\n\n", m.dog.Name))
	b.WriteString(fmt.Sprintf("Breed:  %s\n", m.dog.Breed))
	b.WriteString(fmt.Sprintf("Age:    %s\n", plural(m.dog.Age, "year")))
	b.WriteString(fmt.Sprintf("Zip:    %s\n", m.dog.ZipCode))
	if m.dog.Img != "" {
		b.WriteString(fmt.Sprintf("Photo:  %s\n", m.dog.Img))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("c copy  esc back  q quit"))
	return b.String()
}

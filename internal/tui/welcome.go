package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// welcomeModel is the login screen: name and email inputs submitted to the
// catalog's session endpoint.
type welcomeModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newWelcomeModel() welcomeModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 64
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 128
	emailInput.Width = 40

	return welcomeModel{inputs: []textinput.Model{nameInput, emailInput}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Dogfetch"))
	b.WriteString("\nFind your new best friend. Log in to start browsing.\n\n")

	b.WriteString("Name   [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email  [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\nLogging in...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("tab next field  enter log in  q quit"))
	return b.String()
}

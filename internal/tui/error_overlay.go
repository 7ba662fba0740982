package tui

// errorOverlayModel is a modal error box rendered over the current screen
// until the user dismisses it.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	body := titleStyle.Render("Something went wrong") + "\n\n" +
		m.message + "\n\n" +
		helpStyle.Render("enter/esc dismiss")
	return overlayBoxStyle.Render(body)
}

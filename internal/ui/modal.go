package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pacer/internal/state"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// reloadMsg asks the model to reload the active page.
type reloadMsg struct{}

// errorModal shows the error of a page status until dismissed.
type errorModal struct {
	title  string
	status *state.Status
}

func newErrorModal(title string, status *state.Status) errorModal {
	return errorModal{title: title, status: status}
}

func (e errorModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil, false
	}
	switch {
	case key.Matches(k, keys.Confirm), key.Matches(k, keys.Cancel):
		e.status.DismissError()
		return e, nil, true
	case key.Matches(k, keys.Reload):
		e.status.DismissError()
		return e, func() tea.Msg { return reloadMsg{} }, true
	case key.Matches(k, keys.Quit):
		return e, tea.Quit, true
	}
	return e, nil, false
}

func (e errorModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	message := e.status.Error()
	if message == "" {
		message = "request failed"
	}

	var b strings.Builder
	b.WriteString(styles.DangerText.Render(e.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Width(DialogWidth - 6).Render(message))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter dismiss   r retry"))
	return placeDialog(theme, width, height, b.String())
}

// placeDialog centers content in a bordered box over the whole screen.
func placeDialog(theme Theme, width, height int, content string) string {
	box := theme.Styles().Dialog.Width(DialogWidth).Render(content)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

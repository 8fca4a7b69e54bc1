package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tokenMsg carries the token typed into the login view. An empty token
// means the operator backed out.
type tokenMsg struct {
	token string
}

// loginModal is the view behind the login route: one masked token input.
type loginModal struct {
	input textinput.Model
}

func newLoginModal() loginModal {
	ti := textinput.New()
	ti.Placeholder = "API token"
	ti.Prompt = "> "
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.CharLimit = 256
	ti.Focus()
	return loginModal{input: ti}
}

func (l loginModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Confirm):
			token := strings.TrimSpace(l.input.Value())
			if token == "" {
				return l, nil, false
			}
			return l, func() tea.Msg { return tokenMsg{token: token} }, true
		case key.Matches(k, keys.Cancel):
			return l, func() tea.Msg { return tokenMsg{} }, true
		case k.Type == tea.KeyCtrlC:
			return l, tea.Quit, true
		}
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd, false
}

func (l loginModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Sign in"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("The diary API rejected the request."))
	b.WriteString("\n\n")
	b.WriteString(l.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter save token   esc back"))
	return placeDialog(theme, width, height, b.String())
}

package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/remote"
	"github.com/five82/pacer/internal/state"
)

const statisticsPageID = "statistics"

// statisticsPage lists the statistics components in a scrollable viewport.
type statisticsPage struct {
	ctrl     *remote.Controller[[]api.Component]
	viewport viewport.Model
}

func newStatisticsPage(opts pageOptions) *statisticsPage {
	var fetch remote.FetchFunc
	if client := opts.client; client != nil {
		fetch = func(ctx context.Context) api.Response {
			return client.Statistics(ctx)
		}
	}
	return &statisticsPage{
		ctrl:     remote.NewController[[]api.Component](statisticsPageID, fetch, opts.controller()),
		viewport: viewport.New(80, 20),
	}
}

// Status returns the page status.
func (p *statisticsPage) Status() *state.Status {
	return p.ctrl.Status()
}

// Reload refetches the statistics.
func (p *statisticsPage) Reload() tea.Cmd {
	return p.ctrl.Reload()
}

func (p *statisticsPage) handleLoaded(msg remote.LoadedMsg) bool {
	if !p.ctrl.Update(msg) {
		return false
	}
	p.viewport.GotoTop()
	return true
}

func (p *statisticsPage) resize(width, height int) {
	p.viewport.Width = max(width, 1)
	p.viewport.Height = max(height, 1)
}

func (p *statisticsPage) handleKey(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Top):
		p.viewport.GotoTop()
		return nil
	case key.Matches(msg, keys.Bottom):
		p.viewport.GotoBottom()
		return nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// refresh re-renders the viewport content from the controller state.
func (p *statisticsPage) refresh(styles Styles, spinner string) {
	p.viewport.SetContent(p.content(styles, spinner))
}

func (p *statisticsPage) content(styles Styles, spinner string) string {
	components, known := p.ctrl.Data()
	stale := false
	if !known {
		last, ok := p.ctrl.Last()
		switch {
		case p.Status().Loading():
			return spinner + " Loading statistics..."
		case ok && p.Status().Kind() == state.Failed:
			components, stale = last, true
		case p.Status().Kind() == state.Failed:
			return styles.MutedText.Render("Statistics unavailable. Press r to retry.")
		default:
			return ""
		}
	}
	if len(components) == 0 {
		return styles.MutedText.Render("No statistics yet.")
	}

	var b strings.Builder
	if stale {
		b.WriteString(styles.FaintText.Render("showing last loaded values"))
		b.WriteString("\n\n")
	}
	for i, c := range components {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.AccentText.Bold(true).Render(c.Name))
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  %d", c.Count())))
		b.WriteString("\n")
		for _, m := range c.Models {
			b.WriteString("  ")
			b.WriteString(styles.Text.Bold(true).Render(m.Name))
			b.WriteString("\n")
			for _, s := range m.Statistics {
				b.WriteString("    ")
				b.WriteString(styles.MutedText.Render(padRight(s.Name, LabelColumnWidth)))
				b.WriteString(styles.Text.Render(s.Display()))
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *statisticsPage) View() string {
	return p.viewport.View()
}

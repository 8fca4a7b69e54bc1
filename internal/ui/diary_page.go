package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/diary"
	"github.com/five82/pacer/internal/field"
	"github.com/five82/pacer/internal/remote"
	"github.com/five82/pacer/internal/state"
)

// pageOptions are shared by every page controller the model builds.
type pageOptions struct {
	ctx        context.Context
	client     api.DiaryAPI
	navigator  remote.Navigator
	loginRoute string
	patterns   diary.Patterns
	policy     field.FailurePolicy
}

func (o pageOptions) controller() remote.Options {
	return remote.Options{Context: o.ctx, Navigator: o.navigator, LoginRoute: o.loginRoute}
}

type diaryRow struct {
	heading string
	field   *field.Field
}

// diaryPage shows one diary date and lets the operator edit its fields.
type diaryPage struct {
	opts pageOptions

	date diary.Date
	ctrl *remote.Controller[[]api.Record]
	rows []diaryRow
	// invalid is keyed by write key and fed by each field's setInvalid.
	invalid map[string]bool
	cursor  int

	editing bool
	input   textinput.Model
}

func newDiaryPage(opts pageOptions, date diary.Date) *diaryPage {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = ValueColumnWidth - 2

	p := &diaryPage{
		opts:    opts,
		invalid: make(map[string]bool),
		input:   ti,
	}
	p.open(date)
	return p
}

func (p *diaryPage) open(date diary.Date) {
	p.date = date
	client, path := p.opts.client, date.String()
	fetch := func(ctx context.Context) api.Response {
		return client.Diary(ctx, path)
	}
	if client == nil {
		fetch = nil
	}
	p.ctrl = remote.NewController[[]api.Record]("diary "+path, fetch, p.opts.controller())
}

// Status returns the page status.
func (p *diaryPage) Status() *state.Status {
	return p.ctrl.Status()
}

// Reload refetches the current date. Rows stay visible until the new
// payload replaces them.
func (p *diaryPage) Reload() tea.Cmd {
	p.stopEditing()
	return p.ctrl.Reload()
}

// Go switches to another date. Responses for the old date no longer match
// any controller and are ignored.
func (p *diaryPage) Go(date diary.Date) tea.Cmd {
	p.stopEditing()
	p.open(date)
	p.rows = nil
	p.cursor = 0
	p.invalid = make(map[string]bool)
	return p.ctrl.Reload()
}

func (p *diaryPage) handleLoaded(msg remote.LoadedMsg) bool {
	if !p.ctrl.Update(msg) {
		return false
	}
	if records, ok := p.ctrl.Data(); ok {
		p.bind(diary.Entries(records))
	}
	return true
}

// bind replaces the rows with the new payload. A field that is still
// present keeps its identity and is re-seeded from its new descriptor.
func (p *diaryPage) bind(entries []diary.Entry) {
	existing := make(map[string]*field.Field, len(p.rows))
	for _, row := range p.rows {
		if desc := row.field.Descriptor(); desc.Editable() {
			existing[desc.Key] = row.field
		}
	}

	rows := make([]diaryRow, 0, len(entries))
	for _, e := range entries {
		if f, ok := existing[e.Descriptor.Key]; ok && e.Descriptor.Editable() {
			f.Sync(e.Descriptor)
			delete(existing, e.Descriptor.Key)
			rows = append(rows, diaryRow{heading: e.Heading, field: f})
			continue
		}
		rows = append(rows, diaryRow{heading: e.Heading, field: p.newField(e.Descriptor)})
	}
	p.rows = rows
	if p.cursor >= len(rows) {
		p.cursor = max(len(rows)-1, 0)
	}
}

func (p *diaryPage) newField(desc *field.Descriptor) *field.Field {
	if !desc.Editable() || p.opts.client == nil {
		return field.New(desc, nil)
	}
	writer := diary.Writer(p.opts.client, p.date, desc.Key)
	opts := []field.Option{field.WithContext(p.opts.ctx), field.WithPolicy(p.opts.policy)}
	if rule := diary.RuleFor(desc, p.opts.patterns); rule != nil {
		writeKey := desc.Key
		return field.NewValidating(desc, writer, rule, func(invalid bool) {
			p.invalid[writeKey] = invalid
		}, opts...)
	}
	return field.New(desc, writer, opts...)
}

func (p *diaryPage) handleWritten(msg field.WrittenMsg) bool {
	for _, row := range p.rows {
		if row.field.Update(msg) {
			return true
		}
	}
	return false
}

func (p *diaryPage) selected() *field.Field {
	if p.cursor < 0 || p.cursor >= len(p.rows) {
		return nil
	}
	return p.rows[p.cursor].field
}

func (p *diaryPage) handleKey(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	if p.editing {
		return p.handleEditKey(msg, keys)
	}
	switch {
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < len(p.rows)-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.Top):
		p.cursor = 0
	case key.Matches(msg, keys.Bottom):
		p.cursor = max(len(p.rows)-1, 0)
	case key.Matches(msg, keys.Edit):
		return p.startEditing()
	case key.Matches(msg, keys.PrevPeriod):
		return p.Go(p.date.Shift(-1))
	case key.Matches(msg, keys.NextPeriod):
		return p.Go(p.date.Shift(1))
	case key.Matches(msg, keys.CycleSchedule):
		return p.Go(p.date.WithSchedule(p.date.Schedule.Next()))
	case key.Matches(msg, keys.Today):
		return p.Go(diary.DateOf(p.date.Schedule, time.Now()))
	}
	return nil
}

func (p *diaryPage) startEditing() tea.Cmd {
	f := p.selected()
	if f == nil || !f.Descriptor().Editable() {
		return nil
	}
	p.editing = true
	p.input.SetValue(f.Value())
	p.input.CursorEnd()
	return p.input.Focus()
}

func (p *diaryPage) stopEditing() {
	p.editing = false
	p.input.Blur()
}

// handleEditKey feeds a keystroke to the editor. Every change of the
// editor value goes to the field, which validates it and writes it.
func (p *diaryPage) handleEditKey(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	if key.Matches(msg, keys.Confirm) || key.Matches(msg, keys.Cancel) {
		p.stopEditing()
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return tea.Batch(cmd, p.edit(p.input.Value()))
}

func (p *diaryPage) edit(value string) tea.Cmd {
	f := p.selected()
	if f == nil || !f.Descriptor().Editable() || value == f.Value() {
		return nil
	}
	return f.Change(value)
}

func (p *diaryPage) View(styles Styles, spinner string, width, height int) string {
	title := fmt.Sprintf("%s  %s", p.date.Title(), styles.FaintText.Render(titleCase(p.date.Schedule.String())))
	lines := []string{styles.Text.Bold(true).Render(title), ""}

	if len(p.rows) == 0 {
		status := p.Status()
		_, known := p.ctrl.Data()
		switch {
		case status.Loading():
			lines = append(lines, spinner+" Loading diary...")
		case known:
			lines = append(lines, styles.MutedText.Render("Nothing recorded for this "+p.date.Schedule.String()+"."))
		case status.Kind() == state.Failed:
			lines = append(lines, styles.MutedText.Render("Diary unavailable. Press r to retry."))
		}
		return strings.Join(lines, "\n")
	}

	if _, known := p.ctrl.Data(); !known && p.Status().Kind() == state.Failed {
		lines = append(lines, styles.FaintText.Render("showing last loaded values"), "")
	}

	focus := 0
	heading := ""
	for i, row := range p.rows {
		if row.heading != heading {
			heading = row.heading
			if heading != "" {
				lines = append(lines, styles.AccentText.Bold(true).Render(heading))
			}
		}
		if i == p.cursor {
			focus = len(lines)
		}
		lines = append(lines, p.renderRow(styles, row.field, i == p.cursor, width))
	}
	head := lines[:2]
	body := window(lines[2:], focus-2, height-2)
	return strings.Join(append(append([]string{}, head...), body...), "\n")
}

func (p *diaryPage) renderRow(styles Styles, f *field.Field, selected bool, width int) string {
	desc := f.Descriptor()
	marker := ternary(selected, "> ", "  ")
	label := padRight(truncate(desc.Label, LabelColumnWidth-1), LabelColumnWidth)

	value := f.Value()
	if selected && p.editing {
		value = p.input.View()
	} else {
		value = padRight(truncate(value, ValueColumnWidth-1), ValueColumnWidth)
	}

	units := ""
	if width >= LayoutCompactWidth || width == 0 {
		units = padRight(desc.Units, 6)
	}

	var chip string
	switch {
	case p.invalid[desc.Key]:
		chip = styles.StatusStyle("invalid").Render("invalid")
	case f.Pending():
		chip = styles.StatusStyle("pending").Render("saving")
	case f.Err() != nil:
		chip = styles.DangerText.Render(truncate(f.Err().Error(), 40))
	case !desc.Editable():
		chip = styles.FaintText.Render("read-only")
	}

	line := marker + label + value + " " + units + chip
	if selected {
		return styles.Selected.Render(line)
	}
	return styles.Text.Render(line)
}

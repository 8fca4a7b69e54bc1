package remote

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/state"
)

// FetchFunc performs one page request and returns the settled response.
// It runs inside a tea.Cmd goroutine.
type FetchFunc func(ctx context.Context) api.Response

// LoadedMsg carries a settled page fetch back into the Update loop.
type LoadedMsg struct {
	Page       string
	Generation uint64
	Response   api.Response
}

// Options configure a Controller.
type Options struct {
	Context    context.Context
	Navigator  Navigator
	LoginRoute string
}

// Controller orchestrates the fetch cycle of one page: a read counter,
// the page status and the decoded page data.
type Controller[T any] struct {
	page       string
	ctx        context.Context
	fetch      FetchFunc
	navigator  Navigator
	loginRoute string

	reads  uint64
	status state.Status

	data    T
	known   bool
	last    T
	hasLast bool
}

// NewController builds a controller for the page identified by page.
func NewController[T any](page string, fetch FetchFunc, opts Options) *Controller[T] {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return &Controller[T]{
		page:       page,
		ctx:        ctx,
		fetch:      fetch,
		navigator:  opts.Navigator,
		loginRoute: opts.LoginRoute,
	}
}

// Page returns the page id used to route LoadedMsg.
func (c *Controller[T]) Page() string {
	return c.page
}

// Reads returns the reload counter. It only ever increases.
func (c *Controller[T]) Reads() uint64 {
	return c.reads
}

// Status returns the page status for rendering.
func (c *Controller[T]) Status() *state.Status {
	return &c.status
}

// Data returns the loaded page data. ok is false while the data is
// unknown, which is distinct from loaded-but-empty.
func (c *Controller[T]) Data() (T, bool) {
	return c.data, c.known
}

// Last returns the most recent successfully loaded data, surviving resets,
// so a page can keep showing stale data under an error.
func (c *Controller[T]) Last() (T, bool) {
	return c.last, c.hasLast
}

// Reload bumps the read counter, resets the data to unknown, marks the page
// busy and returns the single command that fetches it.
func (c *Controller[T]) Reload() tea.Cmd {
	c.reads++
	generation := c.reads

	var zero T
	c.data = zero
	c.known = false
	c.status.Begin()

	if c.fetch == nil {
		c.status.Fail("no fetch configured")
		return nil
	}

	page, ctx, fetch := c.page, c.ctx, c.fetch
	return func() tea.Msg {
		return LoadedMsg{Page: page, Generation: generation, Response: fetch(ctx)}
	}
}

// Update consumes LoadedMsg for this page and reports whether it did.
// Responses from a generation older than the latest Reload are dropped.
func (c *Controller[T]) Update(msg tea.Msg) bool {
	loaded, ok := msg.(LoadedMsg)
	if !ok || loaded.Page != c.page {
		return false
	}
	if loaded.Generation != c.reads {
		log.Printf("%s: dropping stale response (generation %d, latest %d)", c.page, loaded.Generation, c.reads)
		return true
	}
	c.pipeline().Handle(loaded.Response)
	return true
}

func (c *Controller[T]) pipeline() Pipeline[T] {
	return Pipeline[T]{
		Navigator:  c.navigator,
		SetData:    c.setData,
		Status:     &c.status,
		LoginRoute: c.loginRoute,
	}
}

func (c *Controller[T]) setData(v T) {
	c.data = v
	c.known = true
	c.last = v
	c.hasLast = true
}

package ui

import (
	"log"
	"strings"

	"github.com/five82/pacer/internal/remote"
)

// Routes pacer can show.
const (
	RouteDiary      = "/diary"
	RouteStatistics = "/statistics"
)

var viewOrder = []string{RouteDiary, RouteStatistics}

// Router holds the current route. It is the remote.Navigator handed to
// every page controller, so an auth failure lands here.
type Router struct {
	current    string
	previous   string
	loginRoute string
}

var _ remote.Navigator = (*Router)(nil)

// NewRouter starts at start. Unknown start routes fall back to the diary.
func NewRouter(start, loginRoute string) *Router {
	if strings.TrimSpace(loginRoute) == "" {
		loginRoute = remote.DefaultLoginRoute
	}
	start = strings.TrimSpace(start)
	if start != RouteStatistics {
		start = RouteDiary
	}
	return &Router{current: start, previous: start, loginRoute: loginRoute}
}

// Navigate switches to route and remembers where it came from.
func (r *Router) Navigate(route string) {
	if route == r.current {
		return
	}
	log.Printf("navigate %s -> %s", r.current, route)
	if r.current != r.loginRoute {
		r.previous = r.current
	}
	r.current = route
}

// Current returns the active route.
func (r *Router) Current() string {
	return r.current
}

// LoginRoute returns the route auth failures navigate to.
func (r *Router) LoginRoute() string {
	return r.loginRoute
}

// AtLogin reports whether the login view is active.
func (r *Router) AtLogin() bool {
	return r.current == r.loginRoute
}

// Back returns to the route that was active before login.
func (r *Router) Back() string {
	r.Navigate(r.previous)
	return r.current
}

// Next cycles through the page routes.
func (r *Router) Next() string {
	for i, route := range viewOrder {
		if route == r.current {
			r.Navigate(viewOrder[(i+1)%len(viewOrder)])
			return r.current
		}
	}
	r.Navigate(r.previous)
	return r.current
}

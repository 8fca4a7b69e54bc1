package remote

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/state"
)

// DefaultLoginRoute is where auth failures navigate when no route is configured.
const DefaultLoginRoute = "/login"

// Navigator moves the application to another route.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

// Navigate calls f(route).
func (f NavigatorFunc) Navigate(route string) {
	f(route)
}

// Pipeline applies one settled response to the collaborators a page hands
// it. It touches nothing else.
type Pipeline[T any] struct {
	Navigator  Navigator
	SetData    func(T)
	Status     *state.Status
	LoginRoute string
}

// Handle settles the page status and routes the response: auth failures
// navigate to the login route, other failures become the page error, and
// a 2xx body is decoded into T and handed to SetData. Nothing is returned
// or panicked; a failed cycle leaves the page usable.
func (p Pipeline[T]) Handle(resp api.Response) {
	status := p.Status
	if status == nil {
		status = &state.Status{}
	}
	status.Settle()

	switch {
	case resp.Unauthorized():
		route := p.LoginRoute
		if route == "" {
			route = DefaultLoginRoute
		}
		log.Printf("api %s returned status %d, navigating to %s", resp.Path, resp.StatusCode, route)
		if p.Navigator != nil {
			p.Navigator.Navigate(route)
		}
		return
	case resp.Err != nil:
		log.Printf("api %s failed: %v", resp.Path, resp.Err)
		status.Fail(api.ErrorMessage(resp))
		return
	case !resp.OK():
		msg := api.ErrorMessage(resp)
		log.Printf("api %s returned status %d: %s", resp.Path, resp.StatusCode, msg)
		status.Fail(msg)
		return
	}

	var payload T
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		log.Printf("api %s: decode response: %v", resp.Path, err)
		status.Fail(fmt.Sprintf("decode response: %v", err))
		return
	}
	if p.SetData != nil {
		p.SetData(payload)
	}
	status.Succeed()
}

package ui

import "testing"

func TestNewRouterStart(t *testing.T) {
	cases := []struct {
		name  string
		start string
		want  string
	}{
		{"empty", "", RouteDiary},
		{"statistics", " /statistics ", RouteStatistics},
		{"unknown", "/queue", RouteDiary},
		{"login is not a start page", "/login", RouteDiary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRouter(tc.start, "").Current(); got != tc.want {
				t.Fatalf("Current = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRouterBackSkipsLogin(t *testing.T) {
	r := NewRouter(RouteStatistics, "/signin")
	r.Navigate("/signin")
	if !r.AtLogin() {
		t.Fatalf("AtLogin = false after navigating to the login route")
	}
	r.Navigate("/signin")
	if got := r.Back(); got != RouteStatistics {
		t.Fatalf("Back = %q, want %q", got, RouteStatistics)
	}
}

func TestRouterNextCycles(t *testing.T) {
	r := NewRouter(RouteDiary, "")
	if got := r.Next(); got != RouteStatistics {
		t.Fatalf("Next = %q, want %q", got, RouteStatistics)
	}
	if got := r.Next(); got != RouteDiary {
		t.Fatalf("Next = %q, want %q", got, RouteDiary)
	}
	if r.LoginRoute() != "/login" {
		t.Fatalf("LoginRoute = %q, want default /login", r.LoginRoute())
	}
}

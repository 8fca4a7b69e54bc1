package remote

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/state"
)

type recorder struct {
	routes  []string
	data    [][]string
	setData int
}

func (r *recorder) Navigate(route string) {
	r.routes = append(r.routes, route)
}

func (r *recorder) pipeline(status *state.Status) Pipeline[[]string] {
	return Pipeline[[]string]{
		Navigator: r,
		SetData: func(v []string) {
			r.setData++
			r.data = append(r.data, v)
		},
		Status:     status,
		LoginRoute: "/login",
	}
}

func TestPipeline_SuccessSetsDataAndClearsError(t *testing.T) {
	var status state.Status
	status.Begin()
	status.Fail("previous")
	status.Begin()

	rec := &recorder{}
	rec.pipeline(&status).Handle(api.Response{StatusCode: http.StatusOK, Body: []byte(`["a","b"]`)})

	if diff := cmp.Diff([][]string{{"a", "b"}}, rec.data); diff != "" {
		t.Fatalf("SetData mismatch (-want +got):\n%s", diff)
	}
	if busy := status.Busy(); busy == nil || *busy {
		t.Fatalf("busy = %v, want false", busy)
	}
	if status.Error() != "" {
		t.Fatalf("Error = %q, want empty", status.Error())
	}
	if len(rec.routes) != 0 {
		t.Fatalf("routes = %v, want none", rec.routes)
	}
}

func TestPipeline_NonSuccessReportsServerMessage(t *testing.T) {
	tests := []struct {
		name string
		resp api.Response
		want string
	}{
		{"json message", api.Response{StatusCode: http.StatusBadRequest, Body: []byte(`{"message":"bad date"}`)}, "bad date"},
		{"status text fallback", api.Response{StatusCode: http.StatusInternalServerError, Body: []byte("oops")}, "Internal Server Error"},
		{"transport failure", api.Response{Err: errors.New("execute request: connection refused")}, "execute request: connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var status state.Status
			status.Begin()
			rec := &recorder{}
			rec.pipeline(&status).Handle(tt.resp)

			if rec.setData != 0 {
				t.Fatalf("SetData called %d times, want 0", rec.setData)
			}
			if status.Error() != tt.want {
				t.Fatalf("Error = %q, want %q", status.Error(), tt.want)
			}
			if status.Loading() {
				t.Fatalf("status still loading after settle")
			}
			if len(rec.routes) != 0 {
				t.Fatalf("routes = %v, want none", rec.routes)
			}
		})
	}
}

func TestPipeline_AuthFailureNavigatesOnly(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		var status state.Status
		status.Begin()
		rec := &recorder{}
		rec.pipeline(&status).Handle(api.Response{StatusCode: code, Body: []byte(`{"message":"denied"}`)})

		if diff := cmp.Diff([]string{"/login"}, rec.routes); diff != "" {
			t.Fatalf("status %d routes mismatch (-want +got):\n%s", code, diff)
		}
		if rec.setData != 0 {
			t.Fatalf("status %d: SetData called", code)
		}
		if status.Kind() == state.Failed {
			t.Fatalf("status %d: error recorded %q, want none", code, status.Error())
		}
		if busy := status.Busy(); busy == nil || *busy {
			t.Fatalf("status %d: busy = %v, want false", code, busy)
		}
	}
}

func TestPipeline_DefaultLoginRoute(t *testing.T) {
	var got string
	p := Pipeline[[]string]{Navigator: NavigatorFunc(func(route string) { got = route })}
	p.Handle(api.Response{StatusCode: http.StatusUnauthorized})
	if got != DefaultLoginRoute {
		t.Fatalf("route = %q, want %q", got, DefaultLoginRoute)
	}
}

func TestPipeline_DecodeFailureIsContained(t *testing.T) {
	var status state.Status
	status.Begin()
	rec := &recorder{}
	rec.pipeline(&status).Handle(api.Response{StatusCode: http.StatusOK, Body: []byte("{not-json")})

	if rec.setData != 0 {
		t.Fatalf("SetData called on malformed body")
	}
	if !strings.HasPrefix(status.Error(), "decode response") {
		t.Fatalf("Error = %q, want decode response message", status.Error())
	}
}

func TestPipeline_NilCollaboratorsDoNotPanic(t *testing.T) {
	var p Pipeline[[]string]
	p.Handle(api.Response{StatusCode: http.StatusOK, Body: []byte(`[]`)})
	p.Handle(api.Response{StatusCode: http.StatusUnauthorized})
	p.Handle(api.Response{StatusCode: http.StatusTeapot})
}

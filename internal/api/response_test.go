package api

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{"json message", Response{StatusCode: 400, Body: []byte(`{"message":" bad date "}`)}, "bad date"},
		{"blank message falls back", Response{StatusCode: 404, Body: []byte(`{"message":""}`)}, "Not Found"},
		{"plain text body", Response{StatusCode: 500, Body: []byte("boom")}, "Internal Server Error"},
		{"unknown code uses status line", Response{StatusCode: 599, Status: "599 Custom"}, "599 Custom"},
		{"unknown code without status", Response{StatusCode: 599}, "status 599"},
		{"transport error", Response{Err: errors.New("connection refused")}, "connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.resp); got != tt.want {
				t.Fatalf("ErrorMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResponseClassification(t *testing.T) {
	tests := []struct {
		code         int
		ok, unauthed bool
	}{
		{http.StatusOK, true, false},
		{http.StatusNoContent, true, false},
		{http.StatusUnauthorized, false, true},
		{http.StatusForbidden, false, true},
		{http.StatusBadRequest, false, false},
		{http.StatusInternalServerError, false, false},
	}
	for _, tt := range tests {
		r := Response{StatusCode: tt.code}
		if r.OK() != tt.ok || r.Unauthorized() != tt.unauthed {
			t.Fatalf("status %d: OK=%v Unauthorized=%v, want %v %v", tt.code, r.OK(), r.Unauthorized(), tt.ok, tt.unauthed)
		}
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode[[]Component](Response{StatusCode: 200, Body: []byte(`[]`)})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("Decode = %#v, want empty non-nil slice", got)
	}

	_, err = Decode[Record](Response{StatusCode: 403, Path: "/api/diary/2024"})
	if !IsUnauthorized(err) {
		t.Fatalf("Decode error = %v, want unauthorized StatusError", err)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{true, "true"},
		{72.0, "72"},
		{72.25, "72.25"},
		{7, "7"},
		{int64(9), "9"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Fatalf("FormatValue(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

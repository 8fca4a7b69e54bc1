package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/demoapi"
)

func writeConfig(t *testing.T, apiURL, token string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	body := fmt.Sprintf("api_url = %q\napi_token = %q\n", apiURL, token)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestPrintStatisticsJSON(t *testing.T) {
	srv := httptest.NewServer(demoapi.New())
	defer srv.Close()

	var buf bytes.Buffer
	err := PrintStatistics(context.Background(), writeConfig(t, srv.URL, ""), Output{Writer: &buf})
	if err != nil {
		t.Fatalf("PrintStatistics: %v", err)
	}
	var got []api.Component
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || got[0].Name != "Activity" {
		t.Fatalf("components = %+v", got)
	}
}

func TestPrintDiaryYAMLUsesConfiguredToken(t *testing.T) {
	handler := demoapi.New(demoapi.WithToken("s3cret"))
	handler.Set("2026-06-01", "notes", "long ride")
	srv := httptest.NewServer(handler)
	defer srv.Close()

	var buf bytes.Buffer
	out := Output{Writer: &buf, Format: "yaml"}
	if err := PrintDiary(context.Background(), writeConfig(t, srv.URL, "s3cret"), "2026-06-01", out); err != nil {
		t.Fatalf("PrintDiary: %v", err)
	}
	if !strings.Contains(buf.String(), "value: long ride") {
		t.Fatalf("yaml output missing the note:\n%s", buf.String())
	}
}

func TestPrintDiaryUnauthorized(t *testing.T) {
	srv := httptest.NewServer(demoapi.New(demoapi.WithToken("s3cret")))
	defer srv.Close()

	err := PrintDiary(context.Background(), writeConfig(t, srv.URL, "wrong"), "2026-06", Output{Writer: &bytes.Buffer{}})
	if err == nil {
		t.Fatalf("PrintDiary returned nil error")
	}
	if !api.IsUnauthorized(err) || !strings.Contains(err.Error(), "set api_token") {
		t.Fatalf("err = %v, want an unauthorized hint", err)
	}
}

func TestPrintDiaryRejectsBadDate(t *testing.T) {
	err := PrintDiary(context.Background(), writeConfig(t, "127.0.0.1:1", ""), "June", Output{Writer: &bytes.Buffer{}})
	if err == nil || !strings.Contains(err.Error(), "cannot parse date") {
		t.Fatalf("err = %v, want a date parse error", err)
	}
}

func TestServeDemoStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- ServeDemo(ctx, DemoOptions{Addr: "127.0.0.1:0", Ready: func(addr string) { ready <- addr }})
	}()

	var addr string
	select {
	case addr = <-ready:
	case err := <-done:
		t.Fatalf("ServeDemo returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("demo api never became ready")
	}

	res, err := http.Get("http://" + addr + "/api/statistics")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	_ = res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ServeDemo: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("ServeDemo did not stop")
	}
}

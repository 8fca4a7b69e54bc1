package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/pacer/internal/demoapi"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestStatsCommandPrintsYAML(t *testing.T) {
	srv := httptest.NewServer(demoapi.New())
	defer srv.Close()

	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte(fmt.Sprintf("api_url = %q\n", srv.URL)), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execute(t, "--config", cfg, "stats", "--format", "yaml")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "name: Activity") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestDiaryCommandRejectsExtraArgs(t *testing.T) {
	if _, err := execute(t, "diary", "2026-06-01", "2026-06-02"); err == nil {
		t.Fatalf("diary accepted two dates")
	}
}

func TestUnknownFormatFails(t *testing.T) {
	srv := httptest.NewServer(demoapi.New())
	defer srv.Close()

	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte(fmt.Sprintf("api_url = %q\n", srv.URL)), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := execute(t, "--config", cfg, "diary", "2026-06-01", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("err = %v, want unknown format", err)
	}
}

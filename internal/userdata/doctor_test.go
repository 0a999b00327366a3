package userdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := filepath.Join(t.TempDir(), "loadout-home")
	t.Setenv("LOADOUT_HOME", home)
	t.Setenv("LOADOUT_TEMPLATES", "")
	return home
}

func TestCheckInstallation_MissingEverything(t *testing.T) {
	home := setupHome(t)

	var buf bytes.Buffer
	if err := CheckInstallation(&buf, false, "dev"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[MISS] "+home) {
		t.Errorf("expected miss for %s, got:\n%s", home, out)
	}
	if !strings.Contains(out, "loadout seed") {
		t.Errorf("expected repair hint, got:\n%s", out)
	}
	if _, err := os.Stat(home); !os.IsNotExist(err) {
		t.Error("check without --fix must not create anything")
	}
}

func TestCheckInstallation_Fix(t *testing.T) {
	home := setupHome(t)

	var buf bytes.Buffer
	if err := CheckInstallation(&buf, true, "dev"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "[FIX ]") {
		t.Errorf("expected fix line, got:\n%s", buf.String())
	}
	if _, err := os.Stat(filepath.Join(home, TemplatesDir, "AGENTS.md")); err != nil {
		t.Errorf("expected payload seeded: %v", err)
	}

	// A second check is clean.
	buf.Reset()
	if err := CheckInstallation(&buf, false, "dev"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "[MISS]") {
		t.Errorf("expected clean report after fix, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "bundle core") {
		t.Errorf("expected bundle line, got:\n%s", buf.String())
	}
}

func TestCheckInstallation_OldCLIWarns(t *testing.T) {
	home := setupHome(t)
	if err := Seed(io.Discard, filepath.Join(home, TemplatesDir)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := CheckInstallation(&buf, false, "0.1.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "[WARN]") {
		t.Errorf("expected compat warning for 0.1.0, got:\n%s", buf.String())
	}
}

func TestCheckInstallation_PartialPayload(t *testing.T) {
	home := setupHome(t)
	tmpl := filepath.Join(home, TemplatesDir)
	if err := os.MkdirAll(tmpl, 0755); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := CheckInstallation(&buf, false, "dev"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[ OK ] "+tmpl) {
		t.Errorf("expected ok for %s, got:\n%s", tmpl, out)
	}
	if !strings.Contains(out, "[MISS] "+filepath.Join(tmpl, "AGENTS.md")) {
		t.Errorf("expected miss for AGENTS.md, got:\n%s", out)
	}
}

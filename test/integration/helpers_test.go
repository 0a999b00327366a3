//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // LOADOUT_HOME — the Loadout home root
	TemplatesDir string // LOADOUT_TEMPLATES — the template payload root
	WorkDir      string // A mock working directory to install into
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so all Loadout operations are sandboxed. The env vars are
// restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:      t.TempDir(),
		TemplatesDir: t.TempDir(),
		WorkDir:      t.TempDir(),
	}

	t.Setenv("LOADOUT_HOME", env.HomeDir)
	t.Setenv("LOADOUT_TEMPLATES", env.TemplatesDir)

	return env
}

// setupPayload fills templatesDir with a small synthetic payload: an
// AGENTS.md config and two skills. Returns the payload root.
func setupPayload(t *testing.T, templatesDir string) string {
	t.Helper()

	writeFile(t, filepath.Join(templatesDir, "AGENTS.md"), "# Agent Instructions\n\nSynthetic payload for tests.\n")
	writeSkillDoc(t, templatesDir, "a", "skill-a")
	writeSkillDoc(t, templatesDir, "b", "skill-b")

	return templatesDir
}

// writeSkillDoc creates skills/<dir>/SKILL.md with minimal valid frontmatter.
func writeSkillDoc(t *testing.T, templatesDir, dir, name string) {
	t.Helper()

	doc := "---\nname: " + name + "\ndescription: synthetic test skill\nversion: \"1.0.0\"\n---\n\n# " + name + "\n"
	writeFile(t, filepath.Join(templatesDir, "skills", dir, "SKILL.md"), doc)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

//go:build integration

package integration_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loadout-labs/loadout/internal/scaffold"
	"github.com/loadout-labs/loadout/internal/userdata"
	"github.com/loadout-labs/loadout/internal/workspace"
)

// resolveTargets resolves copy targets the same way the init command does:
// payload root from the environment, destination from the work dir.
func resolveTargets(t *testing.T, workDir string) scaffold.Targets {
	t.Helper()
	tmplRoot, err := userdata.GetTemplatesRoot()
	if err != nil {
		t.Fatalf("GetTemplatesRoot: %v", err)
	}
	return scaffold.Resolve(tmplRoot, workDir)
}

func TestInitFlow_ConfigOnly(t *testing.T) {
	env := setupTestEnv(t)
	setupPayload(t, env.TemplatesDir)

	var out bytes.Buffer
	_, err := scaffold.Run(&out, resolveTargets(t, env.WorkDir), scaffold.Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	assertFileExists(t, filepath.Join(env.WorkDir, "AGENTS.md"))
	assertFileContains(t, filepath.Join(env.WorkDir, "AGENTS.md"), "Synthetic payload")
	assertFileNotExists(t, filepath.Join(env.WorkDir, "skills"))
	if !strings.Contains(out.String(), "Created AGENTS.md") {
		t.Errorf("missing created line in output:\n%s", out.String())
	}
}

func TestInitFlow_WithSkills(t *testing.T) {
	env := setupTestEnv(t)
	setupPayload(t, env.TemplatesDir)

	var out bytes.Buffer
	outcomes, err := scaffold.Run(&out, resolveTargets(t, env.WorkDir), scaffold.Options{WithSkills: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}

	assertFileExists(t, filepath.Join(env.WorkDir, "AGENTS.md"))
	assertFileExists(t, filepath.Join(env.WorkDir, "skills", "a", "SKILL.md"))
	assertFileExists(t, filepath.Join(env.WorkDir, "skills", "b", "SKILL.md"))
	if !strings.Contains(out.String(), "Created skills/") {
		t.Errorf("missing skills line in output:\n%s", out.String())
	}
}

func TestInitFlow_ConfigConflictBlocksSkills(t *testing.T) {
	env := setupTestEnv(t)
	setupPayload(t, env.TemplatesDir)
	writeFile(t, filepath.Join(env.WorkDir, "AGENTS.md"), "user content\n")

	var out bytes.Buffer
	_, err := scaffold.Run(&out, resolveTargets(t, env.WorkDir), scaffold.Options{WithSkills: true})
	if !errors.Is(err, scaffold.ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("error %q does not mention --force", err)
	}

	// The conflict aborts the whole run: skills are never attempted and
	// the existing config is untouched.
	assertFileNotExists(t, filepath.Join(env.WorkDir, "skills"))
	assertFileContains(t, filepath.Join(env.WorkDir, "AGENTS.md"), "user content")
}

func TestInitFlow_SkillsSoftSkip(t *testing.T) {
	env := setupTestEnv(t)
	setupPayload(t, env.TemplatesDir)
	writeFile(t, filepath.Join(env.WorkDir, "skills", "c", "old.md"), "stray\n")

	var out bytes.Buffer
	outcomes, err := scaffold.Run(&out, resolveTargets(t, env.WorkDir), scaffold.Options{WithSkills: true})
	if err != nil {
		t.Fatalf("a pre-existing skills dir must not fail the run: %v", err)
	}

	// Config still lands, the skills tree is left exactly as it was.
	assertFileExists(t, filepath.Join(env.WorkDir, "AGENTS.md"))
	assertFileExists(t, filepath.Join(env.WorkDir, "skills", "c", "old.md"))
	assertFileNotExists(t, filepath.Join(env.WorkDir, "skills", "a", "SKILL.md"))

	var skipped bool
	for _, o := range outcomes {
		if o.Result == scaffold.OutcomeSkipped {
			skipped = true
		}
	}
	if !skipped {
		t.Errorf("expected a skipped outcome, got %+v", outcomes)
	}
	if !strings.Contains(out.String(), "Skipped skills/") {
		t.Errorf("missing skip line in output:\n%s", out.String())
	}
}

func TestInitFlow_ForceReplacesSkillsTree(t *testing.T) {
	env := setupTestEnv(t)
	setupPayload(t, env.TemplatesDir)
	writeFile(t, filepath.Join(env.WorkDir, "AGENTS.md"), "old config\n")
	writeFile(t, filepath.Join(env.WorkDir, "skills", "c", "old.md"), "stray\n")

	var out bytes.Buffer
	_, err := scaffold.Run(&out, resolveTargets(t, env.WorkDir), scaffold.Options{Force: true, WithSkills: true})
	if err != nil {
		t.Fatalf("Run with force: %v", err)
	}

	// The skills tree is an exact mirror of the payload: the stray
	// directory is gone, the payload skills are present.
	assertFileNotExists(t, filepath.Join(env.WorkDir, "skills", "c", "old.md"))
	assertFileNotExists(t, filepath.Join(env.WorkDir, "skills", "c"))
	assertFileExists(t, filepath.Join(env.WorkDir, "skills", "a", "SKILL.md"))
	assertFileExists(t, filepath.Join(env.WorkDir, "skills", "b", "SKILL.md"))
	assertFileContains(t, filepath.Join(env.WorkDir, "AGENTS.md"), "Synthetic payload")
	if !strings.Contains(out.String(), "Overwrote AGENTS.md") {
		t.Errorf("missing overwrite line in output:\n%s", out.String())
	}
}

func TestInitFlow_MissingConfigSource(t *testing.T) {
	env := setupTestEnv(t)
	// Templates dir exists but holds nothing.

	var out bytes.Buffer
	_, err := scaffold.Run(&out, resolveTargets(t, env.WorkDir), scaffold.Options{})
	if !errors.Is(err, scaffold.ErrSourceMissing) {
		t.Fatalf("expected ErrSourceMissing, got %v", err)
	}
	assertFileNotExists(t, filepath.Join(env.WorkDir, "AGENTS.md"))
}

// TestSeededPayloadEndToEnd drives the full chain: seed the embedded
// defaults, install them into a work dir, and inspect the result.
func TestSeededPayloadEndToEnd(t *testing.T) {
	env := setupTestEnv(t)

	var seedOut bytes.Buffer
	if err := userdata.Seed(&seedOut, env.TemplatesDir); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var out bytes.Buffer
	if _, err := scaffold.Run(&out, resolveTargets(t, env.WorkDir), scaffold.Options{WithSkills: true}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	st, err := workspace.Inspect(env.WorkDir)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if !st.HasConfig {
		t.Error("config not reported as installed")
	}
	if len(st.Skills) != 3 {
		t.Errorf("expected 3 installed skills, got %d", len(st.Skills))
	}
	for _, name := range []string{"code-review", "conventional-commits", "release-notes"} {
		if !st.HasSkill(name) {
			t.Errorf("skill %s not reported as installed", name)
		}
	}

	// bundle.yaml describes the payload, not a workspace artifact; it
	// must not be copied into the work dir.
	assertFileNotExists(t, filepath.Join(env.WorkDir, "bundle.yaml"))
}

// A second run against an already initialized directory succeeds without
// touching anything when nothing is forced.
func TestInitFlow_RerunIsSafe(t *testing.T) {
	env := setupTestEnv(t)
	setupPayload(t, env.TemplatesDir)

	var out bytes.Buffer
	if _, err := scaffold.Run(&out, resolveTargets(t, env.WorkDir), scaffold.Options{WithSkills: true}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	marker := filepath.Join(env.WorkDir, "skills", "a", "extra-note.md")
	writeFile(t, marker, "user addition\n")

	out.Reset()
	_, err := scaffold.Run(&out, resolveTargets(t, env.WorkDir), scaffold.Options{WithSkills: true})
	if !errors.Is(err, scaffold.ErrDestinationExists) {
		t.Fatalf("expected config conflict on rerun, got %v", err)
	}
	assertFileExists(t, marker)

	if _, err := os.Stat(filepath.Join(env.WorkDir, "AGENTS.md")); err != nil {
		t.Errorf("first run's config vanished: %v", err)
	}
}

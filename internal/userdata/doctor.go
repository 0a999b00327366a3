package userdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/loadout-labs/loadout/internal/branding"
	"github.com/loadout-labs/loadout/internal/bundle"
	"github.com/loadout-labs/loadout/internal/config"
	"github.com/loadout-labs/loadout/internal/manifest"
	"github.com/loadout-labs/loadout/internal/scaffold"
)

// CheckInstallation validates the Loadout home directory and the template
// payload that init copies from. When fix is true, missing payload entries
// are re-seeded from the embedded defaults. Structural problems are
// reported to w, not returned; the error covers I/O failures only.
func CheckInstallation(w io.Writer, fix bool, cliVersion string) error {
	root, err := GetUserdataRoot()
	if err != nil {
		return err
	}
	tmpl, err := GetTemplatesRoot()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Installation check:")

	missing := 0
	missing += checkDir(w, root)
	missing += checkDir(w, tmpl)
	missing += checkFile(w, filepath.Join(tmpl, scaffold.ConfigFileName))
	missing += checkDir(w, filepath.Join(tmpl, scaffold.SkillsDirName))

	if missing > 0 {
		if fix {
			fmt.Fprintln(w, "  [FIX ] Seeding missing template files...")
			if seedErr := Seed(w, tmpl); seedErr != nil {
				return fmt.Errorf("auto-fix seed: %w", seedErr)
			}
		} else {
			fmt.Fprintf(w, "         Run '%s seed' or '%s doctor --fix' to repair\n",
				branding.CLIName(), branding.CLIName())
		}
		return nil
	}

	checkConfigFile(w)
	checkBundle(w, tmpl, cliVersion)
	return nil
}

func checkDir(w io.Writer, path string) int {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		return 1
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return 1
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", path)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
	return 0
}

func checkFile(w io.Writer, path string) int {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		return 1
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return 1
	}
	if info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s exists but is a directory\n", path)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
	return 0
}

// checkConfigFile reports on the optional config file. Absence is normal.
func checkConfigFile(w io.Writer) {
	path := config.FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [ OK ] %s not present (defaults in use)\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
}

// checkBundle reports on the payload's bundle manifest and whether this
// CLI release is new enough to consume it.
func checkBundle(w io.Writer, tmplRoot, cliVersion string) {
	path := filepath.Join(tmplRoot, bundle.BundleManifestFile)
	m, err := bundle.LoadBundle(tmplRoot)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if m == nil {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		return
	}
	if err := manifest.CheckCompat(m, cliVersion); err != nil {
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s (bundle %s %s)\n", path, m.Name, m.Version)
}

package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// CheckCompat verifies that the running CLI satisfies the bundle's
// min_cli_version constraint. Bundles without a constraint always pass,
// as do unversioned development builds of the CLI.
func CheckCompat(m *BundleManifest, cliVersion string) error {
	if m.MinCLIVersion == "" {
		return nil
	}
	if cliVersion == "" || cliVersion == "dev" {
		return nil
	}
	cmp, err := CompareVersions(cliVersion, m.MinCLIVersion)
	if err != nil {
		return fmt.Errorf("checking bundle compatibility: %w", err)
	}
	if cmp < 0 {
		return fmt.Errorf("bundle %q requires CLI version >= %s (running %s)", m.Name, m.MinCLIVersion, cliVersion)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

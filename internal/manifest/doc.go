// Package manifest handles parsing and validation of Loadout manifests:
// the YAML frontmatter of SKILL.md documents and the bundle.yaml that
// describes a template payload. Both shapes are validated against the
// embedded JSON Schema, and bundle manifests carry a min_cli_version
// constraint checked with semver.
package manifest

package manifest

import (
	"bytes"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// SplitFrontmatter separates the YAML frontmatter block from the markdown
// body of a SKILL.md document. The document must open with a "---" line;
// the frontmatter runs until the next "---" line and the body is everything
// after it.
func SplitFrontmatter(data []byte) (meta, body []byte, err error) {
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || !isFence(lines[0]) {
		return nil, nil, fmt.Errorf("missing frontmatter: document does not open with ---")
	}
	for i := 1; i < len(lines); i++ {
		if isFence(lines[i]) {
			return bytes.Join(lines[1:i], nil), bytes.Join(lines[i+1:], nil), nil
		}
	}
	return nil, nil, fmt.Errorf("unterminated frontmatter: no closing ---")
}

// isFence reports whether a raw line is a frontmatter fence.
func isFence(line []byte) bool {
	return string(bytes.TrimRight(line, "\r\n")) == "---"
}

// ParseSkill parses the frontmatter of SKILL.md contents into a SkillManifest.
func ParseSkill(data []byte) (*SkillManifest, error) {
	meta, _, err := SplitFrontmatter(data)
	if err != nil {
		return nil, err
	}
	return parseTyped[SkillManifest](meta)
}

// ParseSkillFile reads a SKILL.md document and parses its frontmatter.
func ParseSkillFile(path string) (*SkillManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseSkill(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// ParseBundle parses bundle.yaml contents into a BundleManifest.
func ParseBundle(data []byte) (*BundleManifest, error) {
	return parseTyped[BundleManifest](data)
}

// ParseBundleFile reads and parses a bundle.yaml manifest.
func ParseBundleFile(path string) (*BundleManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseBundle(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// parseTyped unmarshals YAML data into a typed manifest struct.
func parseTyped[T any](data []byte) (*T, error) {
	var m T
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshaling manifest: %w", err)
	}
	return &m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

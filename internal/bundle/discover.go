package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/loadout-labs/loadout/internal/manifest"
)

// Payload file names.
const (
	// SkillFileName is the manifest document every skill directory carries.
	SkillFileName = "SKILL.md"

	// BundleManifestFile sits at the payload root, beside AGENTS.md.
	BundleManifestFile = "bundle.yaml"
)

// Skill is a skill document found in a skills tree.
type Skill struct {
	Name     string                  // manifest name, or the directory name when unparseable
	RelPath  string                  // directory path relative to the skills root, slash-separated
	Dir      string                  // absolute directory containing SKILL.md
	Manifest *manifest.SkillManifest // nil when the document failed to parse
	ParseErr error                   // why Manifest is nil
}

// Discover walks a skills tree and returns one entry per directory that
// contains a SKILL.md, at any nesting depth, in lexical walk order.
// Unparseable documents are still returned, with ParseErr set, so callers
// can report them instead of silently dropping files.
func Discover(skillsRoot string) ([]Skill, error) {
	var result []Skill

	err := filepath.WalkDir(skillsRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != SkillFileName {
			return nil
		}

		dir := filepath.Dir(path)
		rel, err := filepath.Rel(skillsRoot, dir)
		if err != nil {
			return err
		}

		s := Skill{
			Name:    filepath.Base(dir),
			RelPath: filepath.ToSlash(rel),
			Dir:     dir,
		}
		m, parseErr := manifest.ParseSkillFile(path)
		if parseErr != nil {
			s.ParseErr = parseErr
		} else {
			s.Manifest = m
			if m.Name != "" {
				s.Name = m.Name
			}
		}

		result = append(result, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning skills tree %s: %w", skillsRoot, err)
	}

	return result, nil
}

// LoadBundle reads the bundle.yaml manifest at the payload root.
// Returns nil, nil when the payload carries no manifest (first-party
// payloads always do; hand-rolled ones may not).
func LoadBundle(root string) (*manifest.BundleManifest, error) {
	path := filepath.Join(root, BundleManifestFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return manifest.ParseBundleFile(path)
}

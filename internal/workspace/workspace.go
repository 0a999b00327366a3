package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/loadout-labs/loadout/internal/bundle"
	"github.com/loadout-labs/loadout/internal/scaffold"
)

// Status describes which Loadout artifacts a working directory holds.
type Status struct {
	HasConfig bool
	Skills    []bundle.Skill
}

// HasSkill reports whether a skill with the given name is installed.
func (s Status) HasSkill(name string) bool {
	for _, sk := range s.Skills {
		if sk.Name == name {
			return true
		}
	}
	return false
}

// Inspect reports the installation state of workDir. A missing config
// file or skills tree is a normal state, not an error; errors are
// reserved for I/O failures.
func Inspect(workDir string) (Status, error) {
	var st Status

	configPath := filepath.Join(workDir, scaffold.ConfigFileName)
	info, err := os.Stat(configPath)
	switch {
	case err == nil:
		if info.IsDir() {
			return st, fmt.Errorf("%s is a directory, expected a file", configPath)
		}
		st.HasConfig = true
	case os.IsNotExist(err):
		// Not installed yet.
	default:
		return st, fmt.Errorf("stating %s: %w", configPath, err)
	}

	skillsDir := filepath.Join(workDir, scaffold.SkillsDirName)
	info, err = os.Stat(skillsDir)
	switch {
	case err == nil && info.IsDir():
		skills, err := bundle.Discover(skillsDir)
		if err != nil {
			return st, fmt.Errorf("scanning %s: %w", skillsDir, err)
		}
		st.Skills = skills
	case err == nil:
		return st, fmt.Errorf("%s is a file, expected a directory", skillsDir)
	case os.IsNotExist(err):
		// Not installed yet.
	default:
		return st, fmt.Errorf("stating %s: %w", skillsDir, err)
	}

	return st, nil
}

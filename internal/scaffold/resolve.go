package scaffold

import "path/filepath"

// Workspace artifact names. The same names are used inside the template
// payload, so a payload mirrors the workspace it produces.
const (
	ConfigFileName = "AGENTS.md"
	SkillsDirName  = "skills"
)

// TargetKind distinguishes single-file targets from directory trees.
type TargetKind string

// Target kinds.
const (
	TargetFile TargetKind = "file"
	TargetDir  TargetKind = "directory"
)

// CopyTarget pairs a payload source path with its workspace destination.
type CopyTarget struct {
	Source      string
	Destination string
	Kind        TargetKind
}

// Targets holds the two copy targets of a scaffolding run, in execution
// order: the config file first, then the skills tree.
type Targets struct {
	Config CopyTarget
	Skills CopyTarget
}

// Resolve composes the copy targets for a run from the template payload
// root and the caller's working directory. Pure path composition — no
// filesystem access and no failure modes; existence is the engine's
// concern. Both roots are explicit parameters so runs are hermetic under
// test.
func Resolve(templatesRoot, workDir string) Targets {
	return Targets{
		Config: CopyTarget{
			Source:      filepath.Join(templatesRoot, ConfigFileName),
			Destination: filepath.Join(workDir, ConfigFileName),
			Kind:        TargetFile,
		},
		Skills: CopyTarget{
			Source:      filepath.Join(templatesRoot, SkillsDirName),
			Destination: filepath.Join(workDir, SkillsDirName),
			Kind:        TargetDir,
		},
	}
}

package manifest

// SkillManifest is the YAML frontmatter of a SKILL.md document.
type SkillManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Version     string   `yaml:"version" json:"version"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	Requires    []string `yaml:"requires,omitempty" json:"requires,omitempty"`
}

// BundleManifest describes a template payload as a whole. It lives in
// bundle.yaml at the payload root, beside AGENTS.md, and is never copied
// into scaffolded workspaces.
type BundleManifest struct {
	Name          string `yaml:"name" json:"name"`
	Version       string `yaml:"version" json:"version"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	MinCLIVersion string `yaml:"min_cli_version,omitempty" json:"min_cli_version,omitempty"`
}

// Kind selects which manifest shape a blob of YAML is validated against.
type Kind string

// Manifest kinds. The values double as $defs keys in the embedded schema.
const (
	KindSkill  Kind = "skill"
	KindBundle Kind = "bundle"
)

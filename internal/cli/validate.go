package cli

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/loadout-labs/loadout/internal/bundle"
	"github.com/loadout-labs/loadout/internal/manifest"
	"github.com/loadout-labs/loadout/internal/scaffold"
	"github.com/loadout-labs/loadout/internal/userdata"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate template payload manifests",
	Long: `Check every SKILL.md frontmatter and the bundle.yaml in the template
payload against the manifest schema, and verify that skill requires
references resolve. An optional path argument validates a different
payload directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var root string
	if len(args) == 1 {
		root = args[0]
	} else {
		var err error
		root, err = userdata.GetTemplatesRoot()
		if err != nil {
			return fmt.Errorf("resolving templates root: %w", err)
		}
	}

	problems := 0
	problems += validateBundle(out, root)

	var skills []bundle.Skill
	skillsRoot := filepath.Join(root, scaffold.SkillsDirName)
	if _, err := os.Stat(skillsRoot); err == nil {
		skills, err = bundle.Discover(skillsRoot)
		if err != nil {
			return fmt.Errorf("discovering skills: %w", err)
		}
		problems += validateSkills(out, skillsRoot, skills)
	} else {
		fmt.Fprintf(out, "  [SKIP] no %s directory\n", scaffold.SkillsDirName)
	}

	for _, issue := range bundle.CheckRequires(skills) {
		fmt.Fprintf(out, "  [FAIL] %s\n", issue)
		problems++
	}

	if problems > 0 {
		return fmt.Errorf("%d validation problem(s)", problems)
	}
	fmt.Fprintln(out, "All manifests valid.")
	return nil
}

func validateBundle(out io.Writer, root string) int {
	m, err := bundle.LoadBundle(root)
	switch {
	case err != nil:
		fmt.Fprintf(out, "  [FAIL] %s: %v\n", bundle.BundleManifestFile, err)
		return 1
	case m == nil:
		fmt.Fprintf(out, "  [SKIP] no %s\n", bundle.BundleManifestFile)
		return 0
	}

	res, err := manifest.ValidateBundleFile(filepath.Join(root, bundle.BundleManifestFile))
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %s: %v\n", bundle.BundleManifestFile, err)
		return 1
	}
	if !res.Valid {
		return reportIssues(out, bundle.BundleManifestFile, res)
	}
	fmt.Fprintf(out, "  [ OK ] %s\n", bundle.BundleManifestFile)
	return 0
}

func validateSkills(out io.Writer, skillsRoot string, skills []bundle.Skill) int {
	problems := 0
	for _, s := range skills {
		rel := path.Join(scaffold.SkillsDirName, s.RelPath, bundle.SkillFileName)
		if s.ParseErr != nil {
			fmt.Fprintf(out, "  [FAIL] %s: %v\n", rel, s.ParseErr)
			problems++
			continue
		}

		full := filepath.Join(skillsRoot, filepath.FromSlash(s.RelPath), bundle.SkillFileName)
		res, err := manifest.ValidateSkillFile(full)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %s: %v\n", rel, err)
			problems++
			continue
		}
		if !res.Valid {
			problems += reportIssues(out, rel, res)
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s\n", rel)
	}
	return problems
}

func reportIssues(out io.Writer, name string, res *manifest.ValidationResult) int {
	for _, is := range res.Issues {
		fmt.Fprintf(out, "  [FAIL] %s: %s: %s\n", name, is.Path, is.Message)
	}
	return len(res.Issues)
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/loadout-labs/loadout/internal/branding"
	"github.com/loadout-labs/loadout/internal/bundle"
	"github.com/loadout-labs/loadout/internal/scaffold"
	"github.com/loadout-labs/loadout/internal/userdata"
	"github.com/loadout-labs/loadout/internal/workspace"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills in the template payload",
	Long: `List the skills available in the template payload and whether each one
is installed in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one payload skill for display.
type listEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Installed   bool   `json:"installed"`
}

func runList(cmd *cobra.Command, args []string) error {
	tmplRoot, err := userdata.GetTemplatesRoot()
	if err != nil {
		return fmt.Errorf("resolving templates root: %w", err)
	}

	skillsRoot := filepath.Join(tmplRoot, scaffold.SkillsDirName)
	if _, err := os.Stat(skillsRoot); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No template payload found. Run '%s seed' first.\n", branding.CLIName())
		return nil
	}

	skills, err := bundle.Discover(skillsRoot)
	if err != nil {
		return fmt.Errorf("discovering skills: %w", err)
	}
	if len(skills) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skills in the template payload.")
		return nil
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	st, err := workspace.Inspect(workDir)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", workDir, err)
	}

	entries := make([]listEntry, 0, len(skills))
	for _, s := range skills {
		e := listEntry{Name: s.Name, Installed: st.HasSkill(s.Name)}
		if s.Manifest != nil {
			e.Version = s.Manifest.Version
			e.Description = s.Manifest.Description
		}
		entries = append(entries, e)
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tINSTALLED\tDESCRIPTION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		installed := ""
		if e.Installed {
			installed = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, version, installed, e.Description)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

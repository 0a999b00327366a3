package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/loadout-labs/loadout/internal/branding"
	"github.com/loadout-labs/loadout/internal/scaffold"
	"github.com/loadout-labs/loadout/internal/userdata"
	"github.com/spf13/cobra"
)

var (
	initForce      bool
	initWithSkills bool
)

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite artifacts that already exist")
	initCmd.Flags().BoolVar(&initWithSkills, "with-skills", false, "Also install the skills/ library")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the agent config into the current directory",
	Long: `Install the AGENTS.md agent config from the template payload into the
current directory. With --with-skills, the skills/ library is installed
next to it.

Existing files are never touched unless --force is given. An existing
AGENTS.md aborts the whole run; an existing skills/ directory is merely
skipped, since the config may still need installing around it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		tmplRoot, err := userdata.GetTemplatesRoot()
		if err != nil {
			return err
		}

		targets := scaffold.Resolve(tmplRoot, workDir)
		opts := scaffold.Options{Force: initForce, WithSkills: initWithSkills}
		if _, err := scaffold.Run(cmd.OutOrStdout(), targets, opts); err != nil {
			if errors.Is(err, scaffold.ErrSourceMissing) {
				return fmt.Errorf("%w (run '%s doctor --fix' to repair the payload)", err, branding.CLIName())
			}
			return err
		}
		return nil
	},
}

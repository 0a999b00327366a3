package cli

import (
	"fmt"

	"github.com/loadout-labs/loadout/internal/userdata"
	"github.com/spf13/cobra"
)

var seedRoot string

func init() {
	seedCmd.Flags().StringVar(&seedRoot, "root", "", "Seed into this directory instead of the configured templates root")
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the embedded default template payload",
	Long: `Write the embedded default payload (AGENTS.md, bundle.yaml, skills/)
into the templates directory. Existing files are never overwritten, so
seeding over a customized payload only fills in what is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := seedRoot
		if root == "" {
			var err error
			root, err = userdata.GetTemplatesRoot()
			if err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeding templates into %s\n", root)
		if err := userdata.Seed(cmd.OutOrStdout(), root); err != nil {
			return fmt.Errorf("seeding templates: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nTemplates ready.")
		return nil
	},
}

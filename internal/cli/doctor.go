package cli

import (
	"github.com/loadout-labs/loadout/internal/userdata"
	"github.com/spf13/cobra"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt to repair issues automatically")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check installation health",
	Long: `Check that the Loadout home directory and template payload are present
and usable. With --fix, missing payload files are re-seeded from the
embedded defaults; user-edited files are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return userdata.CheckInstallation(cmd.OutOrStdout(), doctorFix, buildVersion)
	},
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eadegbola/profiler/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize profiler configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the page owner's details and file locations and writes profiler.yml (or the --config path).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

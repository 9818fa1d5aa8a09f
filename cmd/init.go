package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/tour/internal/config"
)

// initCmd: tour init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new project file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Write(appFs, cfgFile, config.Default()); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", cfgFile)
		return nil
	},
}

package main

import (
	"catering/config"
	"catering/helper"
	"catering/shared/logger"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the catering database schema",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.InitLogger(config.Get())
	},
}

func action(use, short string, run func(*config.Config) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(config.Get())
		},
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		version, dirty, err := helper.Version(config.Get())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		action(helper.ActionUp, "Apply all pending migrations", helper.Up),
		action(helper.ActionDown, "Roll back the last migration", helper.Down),
		action(helper.ActionStepUp, "Apply the next pending migration", helper.StepUp),
		action(helper.ActionDrop, "Roll back every migration", helper.Drop),
		versionCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}

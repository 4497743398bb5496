package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"travelplanner/internal/services"
	"travelplanner/pkg/utils"
)

// app carries what the subcommands share. Tests swap the clipboard and logger.
type app struct {
	verbose   bool
	logger    *zap.Logger
	clipboard services.Copier
}

func newRootCmd(a *app) *cobra.Command {
	if a == nil {
		a = &app{clipboard: utils.SystemClipboard{}}
	}

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Generate sample travel itineraries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newGenerateCmd(a), newTagsCmd())
	return root
}

package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "plin [paths...]",
	Short:            "plin - a pseudo-code vocabulary normalizer and logic checker",
	TraverseChildren: true, // subcommand names take precedence over path arguments
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			// A bare invocation is a usage error, not a help request.
			return errors.New("no file or directory paths given")
		}
		// Bare path arguments run the check subcommand.
		checkCmd.Run(checkCmd, args)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	logger = zap.Must(zap.NewProduction())

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file (default .plin.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Set a timeout for the checker")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
}

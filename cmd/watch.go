package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pseudolang/plin/formatter"
	"github.com/pseudolang/plin/internal"
	tt "github.com/pseudolang/plin/internal/types"
	"github.com/pseudolang/plin/lint"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-check pseudo-code files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			fmt.Printf("Usage: %s\n", cmd.UseLine())
			os.Exit(1)
		}

		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize check engine", zap.Error(err))
		}

		watcher, err := internal.NewWatcher(engine, logger, reportWatchResults)
		if err != nil {
			logger.Fatal("Failed to initialize watcher", zap.Error(err))
		}
		if err := watcher.Watch(args...); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer watcher.Stop()

		fmt.Println("Watching for changes. Press Ctrl+C to stop.")
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
	},
}

func reportWatchResults(filename string, results []tt.Result) {
	fmt.Print(formatter.PrettyFile(filename, results))
}

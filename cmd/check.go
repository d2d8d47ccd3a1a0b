package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pseudolang/plin/formatter"
	tt "github.com/pseudolang/plin/internal/types"
	"github.com/pseudolang/plin/lint"
)

var (
	ignoreRules     string
	checkJSONOutput bool
	outPath         string
	pretty          bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Normalize pseudo-code lines and flag logic defects",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			fmt.Printf("Usage: %s\n", cmd.UseLine())
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize check engine", zap.Error(err))
		}

		for _, collision := range engine.Table().Collisions() {
			logger.Warn("synonym table collision", zap.String("detail", collision))
		}

		if ignoreRules != "" {
			for _, rule := range strings.Split(ignoreRules, ",") {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		runCheckProcess(ctx, logger, engine, args, checkJSONOutput, outPath, pretty)
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rules to ignore")
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output findings in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().BoolVar(&pretty, "pretty", false, "Styled human-readable output")
}

func runCheckProcess(ctx context.Context, logger *zap.Logger, engine lint.CheckEngine, paths []string, isJSON bool, jsonOutput string, pretty bool) {
	files, err := lint.ProcessFiles(ctx, logger, engine, paths, lint.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	printResults(logger, files, isJSON, jsonOutput, pretty)

	if lint.CountFindings(files) > 0 {
		os.Exit(1)
	}
}

func printResults(logger *zap.Logger, files []lint.FileResult, isJSON bool, jsonOutput string, pretty bool) {
	if isJSON {
		printJSON(logger, files, jsonOutput)
		return
	}

	for _, file := range files {
		if pretty {
			fmt.Print(formatter.PrettyFile(file.Path, file.Results))
			continue
		}
		if len(file.Results) > 0 {
			fmt.Println(formatter.Plain(file.Results))
		}
	}
}

func printJSON(logger *zap.Logger, files []lint.FileResult, jsonOutput string) {
	findingsByFile := make(map[string][]tt.Finding)
	for _, file := range files {
		for _, r := range file.Results {
			if r.Flagged() {
				findingsByFile[file.Path] = append(findingsByFile[file.Path], *r.Finding)
			}
		}
	}

	d, err := json.Marshal(findingsByFile)
	if err != nil {
		logger.Error("Error marshalling findings to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}

	f, err := os.Create(jsonOutput)
	if err != nil {
		logger.Error("Error creating JSON output file", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}

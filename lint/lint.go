package lint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pseudolang/plin/internal"
	tt "github.com/pseudolang/plin/internal/types"
	"github.com/pseudolang/plin/scanner"
)

// CheckEngine is the engine surface the facade needs.
type CheckEngine interface {
	Run(filePath string) ([]tt.Result, error)
	RunSource(source []byte) ([]tt.Result, error)
	IgnoreRule(rule string)
}

// FileResult holds one file's results, in input-line order.
type FileResult struct {
	Path    string
	Results []tt.Result
}

// Config represents the overall configuration: a name, per-rule settings,
// and extra synonym entries merged into the built-in table.
type Config struct {
	Name     string                   `yaml:"name"`
	Rules    map[string]tt.ConfigRule `yaml:"rules"`
	Synonyms map[string][]string      `yaml:"synonyms"`
}

// DefaultConfig returns the configuration the tool runs with when no file
// is present: every detector on, at error severity.
func DefaultConfig() Config {
	return Config{
		Name: "plin",
		Rules: map[string]tt.ConfigRule{
			"redundant-condition":  {Severity: tt.SeverityError},
			"contradictory-logic":  {Severity: tt.SeverityError},
			"variable-typo":        {Severity: tt.SeverityError},
			"illogical-comparison": {Severity: tt.SeverityError},
		},
		Synonyms: map[string][]string{},
	}
}

// New builds an engine from the configuration file at configurationPath.
// An empty path, or a missing file at the default location, falls back to
// DefaultConfig.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}
	return internal.NewEngine(config.Synonyms, config.Rules)
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	if configurationPath == "" {
		configurationPath = ".plin.yaml"
	}

	f, err := os.Open(configurationPath)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var config Config
	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return Config{}, fmt.Errorf("error parsing %s: %w", configurationPath, err)
	}
	return config, nil
}

// ProcessFiles runs the processor over every path and returns per-file
// results sorted by path.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine CheckEngine,
	paths []string,
	processor func(CheckEngine, string) ([]tt.Result, error),
) ([]FileResult, error) {
	var all []FileResult
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, results...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Path < all[j].Path })
	return all, nil
}

// ProcessPath handles one path. A directory is walked for checkable files,
// which are processed by a bounded worker pool with a progress bar; a
// single file is processed directly.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine CheckEngine,
	path string,
	processor func(CheckEngine, string) ([]tt.Result, error),
) ([]FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	// An explicitly named file is processed whatever its extension; the
	// extension filter applies only when walking directories.
	if !info.IsDir() {
		results, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		return []FileResult{{Path: path, Results: results}}, nil
	}

	scanned, err := scanner.New(path, ".txt", ".pseudo", ".pc").Scan()
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	files := make([]string, len(scanned))
	for i, fi := range scanned {
		files[i] = fi.Path
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	fileResults := make([]FileResult, len(files))
	errs := make([]error, len(files))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			results, err := processor(engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				errs[i] = err
				return
			}
			fileResults[i] = FileResult{Path: fp, Results: results}
			_ = bar.Add(1)
		}(i, filePath)
	}
	wg.Wait()
	fmt.Println()

	var out []FileResult
	for i, fr := range fileResults {
		if errs[i] != nil {
			continue
		}
		out = append(out, fr)
	}
	return out, nil
}

// ProcessFile is the default file processor.
func ProcessFile(engine CheckEngine, filePath string) ([]tt.Result, error) {
	return engine.Run(filePath)
}

// ProcessSource checks in-memory source text.
func ProcessSource(engine CheckEngine, source []byte) ([]tt.Result, error) {
	return engine.RunSource(source)
}

// CountFindings totals the flagged lines across files.
func CountFindings(files []FileResult) int {
	n := 0
	for _, f := range files {
		for _, r := range f.Results {
			if r.Flagged() {
				n++
			}
		}
	}
	return n
}

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/erraggy/jsonschema2pojo"
	"github.com/erraggy/jsonschema2pojo/config"
	"github.com/erraggy/jsonschema2pojo/generator"
	"github.com/erraggy/jsonschema2pojo/internal/cliutil"
)

// generateFunc runs the generator. Tests replace it to observe whether the
// engine is reached.
var generateFunc = generator.GenerateWithOptions

// Run parses args, generates the classes and reports the exit status
// through a.Exit: 0 after a successful run, 1 otherwise.
func Run(ctx context.Context, a *Arguments, args []string) {
	if err := a.Parse(args); err != nil {
		return
	}
	if a.ShowVersion {
		cliutil.Writef(a.Stdout, "jsonschema2pojo %s\n", jsonschema2pojo.Version())
		a.Exit(0)
		return
	}
	if err := HandleGenerate(ctx, a); err != nil {
		cliutil.Writef(a.Stderr, "Error: %v\n", err)
		a.Exit(1)
		return
	}
	a.Exit(0)
}

// HandleGenerate resolves the configuration, generates the classes, writes
// them below a.Target and prints the summary.
func HandleGenerate(ctx context.Context, a *Arguments) error {
	cfg, err := resolveConfig(a)
	if err != nil {
		return err
	}
	if err := ensureTargetOutsideSources(a.Target, a.Sources); err != nil {
		return err
	}

	logger := newLogger(a)
	logger.Debug("generating", "sources", a.Sources, "target", a.Target, "language", cfg.TargetLanguage)

	opts := []generator.Option{
		generator.WithContext(ctx),
		generator.WithConfig(cfg),
		generator.WithStrictMode(a.Strict),
		generator.WithLogger(logger),
	}
	for _, src := range a.Sources {
		opts = append(opts, generator.WithFilePath(src))
	}

	result, err := generateFunc(opts...)
	if result != nil && len(result.Issues) > 0 {
		printIssues(a, result)
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := result.WriteFiles(a.Target); err != nil {
		return fmt.Errorf("writing generated files: %w", err)
	}
	logger.Debug("wrote files", "count", len(result.Files), "target", a.Target)

	return writeSummary(a, newSummary(a.Target, result))
}

// resolveConfig layers the --config file, JSONSCHEMA2POJO_* variables and
// explicit flags, in increasing precedence.
func resolveConfig(a *Arguments) (config.GenerationConfig, error) {
	cfg, err := config.Load(a.ConfigFile)
	if err != nil {
		return config.GenerationConfig{}, err
	}
	if a.IsSet("p", "package") {
		cfg.TargetPackage = a.Package
	}
	if a.IsSet("b", "generate-builders") {
		cfg.GenerateBuilders = a.GenerateBuilders
	}
	if a.IsSet("l", "language") {
		cfg.TargetLanguage = config.Language(a.Language)
	}
	if a.IsSet("source-type") {
		cfg.SourceType = config.SourceType(a.SourceType)
	}
	if err := cfg.Validate(); err != nil {
		return config.GenerationConfig{}, err
	}
	return cfg, nil
}

func newLogger(a *Arguments) *slog.Logger {
	level := slog.LevelWarn
	if a.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.Stderr, &slog.HandlerOptions{Level: level}))
}

// ensureTargetOutsideSources refuses a target directory that is one of the
// source paths, so generated files never land among the schemas.
func ensureTargetOutsideSources(target string, sources []string) error {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("invalid target directory: %w", err)
	}
	for _, src := range sources {
		absSource, err := filepath.Abs(src)
		if err != nil {
			return fmt.Errorf("invalid source path %s: %w", src, err)
		}
		if absSource == absTarget {
			return fmt.Errorf("target directory %s is also a source", target)
		}
	}
	return nil
}

func printIssues(a *Arguments, result *generator.GenerateResult) {
	cliutil.Writef(a.Stderr, "Generation Issues (%d):\n", len(result.Issues))
	for _, issue := range result.Issues {
		cliutil.Writef(a.Stderr, "  %s\n", issue.String())
	}
	cliutil.Writef(a.Stderr, "\n")
}

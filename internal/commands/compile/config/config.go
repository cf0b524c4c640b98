package config

import (
	"fmt"
	"slices"

	"github.com/artuross/mini-compiler/internal/commandinit"
	"github.com/rs/zerolog"
)

// StdPath reads from stdin or writes to stdout.
const StdPath = "-"

type Config struct {
	commandinit.Common

	Concurrency int
	InputPaths  []string
	OutputDir   string
	OutputPath  string
}

func Read(flags commandinit.Flagger, args []string, getEnv func(string) string) (*Config, error) {
	common, err := commandinit.ReadCommon(flags, getEnv)
	if err != nil {
		return nil, err
	}

	inputPaths := args
	if len(inputPaths) == 0 {
		inputPaths = []string{StdPath}
	}

	if len(inputPaths) > 1 && slices.Contains(inputPaths, StdPath) {
		return nil, fmt.Errorf("stdin (%s) cannot be combined with other inputs", StdPath)
	}

	// flags - optional
	concurrency := flags.Int("concurrency")
	if concurrency < 1 {
		return nil, fmt.Errorf("flag --concurrency must be at least 1, got %d", concurrency)
	}

	outputPath := flags.String("output")
	if outputPath != "" && len(inputPaths) > 1 {
		return nil, fmt.Errorf("flag --output requires a single input, got %d", len(inputPaths))
	}

	outputDir := flags.String("output-dir")
	if outputDir != "" && outputPath != "" {
		return nil, fmt.Errorf("flags --output and --output-dir are mutually exclusive")
	}

	if outputDir != "" && inputPaths[0] == StdPath {
		return nil, fmt.Errorf("flag --output-dir cannot be used when reading stdin")
	}

	cfg := Config{
		Common:      *common,
		Concurrency: concurrency,
		InputPaths:  inputPaths,
		OutputDir:   outputDir,
		OutputPath:  outputPath,
	}

	return &cfg, nil
}

func Print(logger *zerolog.Logger, cfg *Config) {
	logger.Debug().
		Strs("inputs", cfg.InputPaths).
		Str("output", cfg.OutputPath).
		Str("outputDir", cfg.OutputDir).
		Int("concurrency", cfg.Concurrency).
		Bool("trace", cfg.Trace).
		Msg("running with config")
}

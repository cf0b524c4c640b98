package config

import (
	"fmt"

	"github.com/artuross/mini-compiler/internal/commandinit"
	"github.com/artuross/mini-compiler/internal/commands/inspect/dump"
)

// StdPath reads the source from stdin.
const StdPath = "-"

type Config struct {
	commandinit.Common

	Format    dump.Format
	InputPath string
	Target    bool
}

func Read(flags commandinit.Flagger, args []string, getEnv func(string) string) (*Config, error) {
	common, err := commandinit.ReadCommon(flags, getEnv)
	if err != nil {
		return nil, err
	}

	if len(args) > 1 {
		return nil, fmt.Errorf("expected at most one input, got %d", len(args))
	}

	inputPath := StdPath
	if len(args) == 1 {
		inputPath = args[0]
	}

	format, err := dump.ParseFormat(flags.String("format"))
	if err != nil {
		return nil, fmt.Errorf("flag --format is invalid: %w", err)
	}

	cfg := Config{
		Common:    *common,
		Format:    format,
		InputPath: inputPath,
		Target:    flags.Bool("target"),
	}

	return &cfg, nil
}

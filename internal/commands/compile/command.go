package compile

import (
	"errors"
	"fmt"
	"os"

	"github.com/artuross/mini-compiler/internal/commandinit"
	"github.com/artuross/mini-compiler/internal/commands/compile/config"
	"github.com/artuross/mini-compiler/internal/commands/compile/exec"
	"github.com/artuross/mini-compiler/internal/transpiler"
	cli "github.com/urfave/cli/v2"
)

var ErrCommandFailed = errors.New("command failed")

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "compile",
		Usage:     "Compiles prefix call source into C-style calls.",
		ArgsUsage: "[FILE...]",
		Description: "Reads stdin when no file (or \"-\") is given and prints the result to stdout. " +
			"Every FILE is written to a sibling file with the " + exec.OutputExtension + " extension.",
		Flags: append(
			commandinit.CommonFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Destination file. Only valid with a single input.",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "Directory for compiled files instead of the input's directory.",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Number of files compiled at the same time.",
				Value: 4,
			},
		),
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	cfg, err := config.Read(cliCtx, cliCtx.Args().Slice(), os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := commandinit.NewLogger(cliCtx.App.ErrWriter, cfg.LogLevel, "compile")
	ctx = logger.WithContext(ctx)

	config.Print(&logger, cfg)

	tracerProvider, tpShutdown, err := commandinit.NewTracerProvider(ctx, cfg.Trace, "transpiler")
	if err != nil {
		logger.Error().Err(err).Msg("init OTEL provider")
		return ErrCommandFailed
	}
	defer tpShutdown(ctx)

	compiler := transpiler.New(transpiler.WithTracerProvider(tracerProvider))

	executor := exec.NewExecutor(
		compiler,
		exec.WithStdio(cliCtx.App.Reader, cliCtx.App.Writer),
		exec.WithTracerProvider(tracerProvider),
	)

	if err := executor.Run(ctx, cfg); err != nil {
		logger.Error().Err(err).Msg("compile")
		return ErrCommandFailed
	}

	return nil
}

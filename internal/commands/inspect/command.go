package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/artuross/mini-compiler/internal/commandinit"
	"github.com/artuross/mini-compiler/internal/commands/inspect/config"
	"github.com/artuross/mini-compiler/internal/commands/inspect/dump"
	"github.com/artuross/mini-compiler/internal/log/semconv"
	cli "github.com/urfave/cli/v2"
)

var ErrCommandFailed = errors.New("command failed")

func flags(extra ...cli.Flag) []cli.Flag {
	return append(
		commandinit.CommonFlags(),
		append([]cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: pretty, json or yaml.",
				Value: string(dump.FormatPretty),
			},
		}, extra...)...,
	)
}

func NewTokensCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Prints the tokens of the source.",
		ArgsUsage: "[FILE]",
		Flags:     flags(),
		Action: func(cliCtx *cli.Context) error {
			return run(cliCtx, "tokens", (*Printer).Tokens)
		},
	}
}

func NewASTCommand() *cli.Command {
	return &cli.Command{
		Name:      "ast",
		Usage:     "Prints the parsed syntax tree of the source.",
		ArgsUsage: "[FILE]",
		Flags: flags(
			&cli.BoolFlag{
				Name:  "target",
				Usage: "Print the transformed C-style tree instead.",
			},
		),
		Action: func(cliCtx *cli.Context) error {
			return run(cliCtx, "ast", (*Printer).AST)
		},
	}
}

type printFunc func(p *Printer, ctx context.Context, w io.Writer, cfg *config.Config, source string) error

func run(cliCtx *cli.Context, command string, printer printFunc) error {
	ctx := cliCtx.Context

	cfg, err := config.Read(cliCtx, cliCtx.Args().Slice(), os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := commandinit.NewLogger(cliCtx.App.ErrWriter, cfg.LogLevel, command)
	ctx = logger.WithContext(ctx)

	tracerProvider, tpShutdown, err := commandinit.NewTracerProvider(ctx, cfg.Trace, "transpiler")
	if err != nil {
		logger.Error().Err(err).Msg("init OTEL provider")
		return ErrCommandFailed
	}
	defer tpShutdown(ctx)

	source, err := readInput(cliCtx.App.Reader, cfg.InputPath)
	if err != nil {
		logger.Error().Err(err).Msg("read input")
		return ErrCommandFailed
	}

	p := NewPrinter(WithTracerProvider(tracerProvider))

	if err := printer(p, ctx, cliCtx.App.Writer, cfg, source); err != nil {
		logger.Error().Err(err).Str(semconv.Format, string(cfg.Format)).Msg(command)
		return ErrCommandFailed
	}

	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == config.StdPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/artuross/mini-compiler/internal/commands/compile/config"
	"github.com/artuross/mini-compiler/internal/defaults"
	"github.com/artuross/mini-compiler/internal/log/semconv"
	"github.com/artuross/mini-compiler/internal/transpiler"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName = "github.com/artuross/mini-compiler/internal/commands/compile/exec"

	// OutputExtension replaces the extension of every compiled file.
	OutputExtension = ".c"
)

var (
	ErrDuplicateOutput = errors.New("inputs compile to the same output path")
	ErrOverwritesInput = errors.New("output path is the same as the input path")
)

type Compiler interface {
	Compile(ctx context.Context, source string) (*transpiler.Result, error)
}

type Executor struct {
	compiler Compiler
	stdin    io.Reader
	stdout   io.Writer
	tracer   trace.Tracer
}

func NewExecutor(compiler Compiler, options ...func(*Executor)) *Executor {
	executor := Executor{
		compiler: compiler,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		tracer:   defaults.TracerProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&executor)
	}

	return &executor
}

func (e *Executor) Run(ctx context.Context, cfg *config.Config) error {
	ctx, span := e.tracer.Start(ctx, "run")
	defer span.End()

	outputPaths, err := resolveOutputPaths(cfg)
	if err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Concurrency)

	for i, inputPath := range cfg.InputPaths {
		outputPath := outputPaths[i]

		group.Go(func() error {
			// skip queued files once another one failed
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := e.compileFile(ctx, inputPath, outputPath); err != nil {
				return fmt.Errorf("compile %s: %w", inputPath, err)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return nil
}

func (e *Executor) compileFile(ctx context.Context, inputPath, outputPath string) error {
	compileID := uuid.NewString()

	ctx, span := e.tracer.Start(
		ctx,
		"compileFile",
		trace.WithAttributes(
			attribute.String(semconv.CompileID, compileID),
			attribute.String(semconv.InputPath, inputPath),
			attribute.String(semconv.OutputPath, outputPath),
		),
	)
	defer span.End()

	logger := zerolog.Ctx(ctx).With().
		Str(semconv.CompileID, compileID).
		Str(semconv.InputPath, inputPath).
		Logger()
	ctx = logger.WithContext(ctx)

	source, err := e.readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	result, err := e.compiler.Compile(ctx, source)
	if err != nil {
		return err
	}

	if err := e.writeOutput(outputPath, result.Output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info().Str(semconv.OutputPath, outputPath).Msg("compiled")

	return nil
}

func (e *Executor) readInput(path string) (string, error) {
	if path == config.StdPath {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (e *Executor) writeOutput(path string, output string) error {
	if path == config.StdPath {
		_, err := fmt.Fprintln(e.stdout, output)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(output+"\n"), 0o644)
}

// resolveOutputPaths returns the output path of every input. Each file output
// must belong to exactly one input and must not replace it.
func resolveOutputPaths(cfg *config.Config) ([]string, error) {
	outputPaths := make([]string, len(cfg.InputPaths))
	owners := make(map[string]string, len(cfg.InputPaths))

	for i, inputPath := range cfg.InputPaths {
		outputPath := resolveOutputPath(cfg, inputPath)
		outputPaths[i] = outputPath

		if outputPath == config.StdPath {
			continue
		}

		cleanPath := filepath.Clean(outputPath)
		if cleanPath == filepath.Clean(inputPath) {
			return nil, fmt.Errorf("compile %s: %w", inputPath, ErrOverwritesInput)
		}

		if owner, ok := owners[cleanPath]; ok {
			return nil, fmt.Errorf("compile %s and %s into %s: %w", owner, inputPath, outputPath, ErrDuplicateOutput)
		}

		owners[cleanPath] = inputPath
	}

	return outputPaths, nil
}

func resolveOutputPath(cfg *config.Config, inputPath string) string {
	if cfg.OutputPath != "" {
		return cfg.OutputPath
	}

	if inputPath == config.StdPath {
		return config.StdPath
	}

	dir := filepath.Dir(inputPath)
	if cfg.OutputDir != "" {
		dir = cfg.OutputDir
	}

	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + OutputExtension

	return filepath.Join(dir, name)
}

func WithStdio(stdin io.Reader, stdout io.Writer) func(*Executor) {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
	}
}

func WithTracerProvider(tp trace.TracerProvider) func(*Executor) {
	return func(e *Executor) {
		e.tracer = tp.Tracer(tracerName)
	}
}

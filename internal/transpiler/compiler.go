// Package transpiler turns prefix calls such as (add 2 4) into C-style calls
// such as add(2, 4); by running the lexer, parser, transformer and code
// generator in order.
//
// Every stage is a pure function of its input. The first failing stage stops
// the pipeline and its error is returned as is, so callers can use errors.As
// with *lexer.LexError, *parser.ParseError or *codegen.CodeGenError.
package transpiler

import (
	"context"

	"github.com/artuross/mini-compiler/internal/defaults"
	"github.com/artuross/mini-compiler/internal/log/semconv"
	"github.com/artuross/mini-compiler/internal/transpiler/ast/clike"
	"github.com/artuross/mini-compiler/internal/transpiler/ast/lisp"
	"github.com/artuross/mini-compiler/internal/transpiler/codegen"
	"github.com/artuross/mini-compiler/internal/transpiler/lexer"
	"github.com/artuross/mini-compiler/internal/transpiler/parser"
	"github.com/artuross/mini-compiler/internal/transpiler/transform"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/artuross/mini-compiler/internal/transpiler"
)

const (
	StageTokenize  = "tokenize"
	StageParse     = "parse"
	StageTransform = "transform"
	StageGenerate  = "generate"
)

// Compile runs the whole pipeline on source and returns the generated code.
func Compile(source string) (string, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return "", err
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}

	target, err := transform.Transform(program)
	if err != nil {
		return "", err
	}

	return codegen.Generate(target)
}

// Result holds the output of every stage of a single compilation.
type Result struct {
	Tokens []*lexer.Token
	Source *lisp.Program
	Target *clike.Program
	Output string
}

// Compiler runs the same pipeline as Compile, tracing and logging every stage.
type Compiler struct {
	tracer trace.Tracer
}

func New(options ...func(*Compiler)) *Compiler {
	compiler := Compiler{
		tracer: defaults.TracerProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&compiler)
	}

	return &compiler
}

func (c *Compiler) Compile(ctx context.Context, source string) (*Result, error) {
	ctx, span := c.tracer.Start(ctx, "Compile")
	defer span.End()

	logger := zerolog.Ctx(ctx)

	tokens, err := runStage(ctx, c.tracer, StageTokenize, func() ([]*lexer.Token, error) {
		return lexer.Tokenize(source)
	})
	if err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.Int(semconv.TokenCount, len(tokens)))
	logger.Debug().Int(semconv.TokenCount, len(tokens)).Msg("tokenized input")

	program, err := runStage(ctx, c.tracer, StageParse, func() (*lisp.Program, error) {
		return parser.Parse(tokens)
	})
	if err != nil {
		return nil, recordError(span, err)
	}

	target, err := runStage(ctx, c.tracer, StageTransform, func() (*clike.Program, error) {
		return transform.Transform(program)
	})
	if err != nil {
		return nil, recordError(span, err)
	}

	output, err := runStage(ctx, c.tracer, StageGenerate, func() (string, error) {
		return codegen.Generate(target)
	})
	if err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.Int(semconv.OutputSize, len(output)))
	logger.Debug().Int(semconv.OutputSize, len(output)).Msg("generated output")

	result := Result{
		Tokens: tokens,
		Source: program,
		Target: target,
		Output: output,
	}

	return &result, nil
}

func runStage[T any](ctx context.Context, tracer trace.Tracer, stage string, run func() (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, stage, trace.WithAttributes(attribute.String(semconv.Stage, stage)))
	defer span.End()

	value, err := run()
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str(semconv.Stage, stage).Msg("stage failed")

		return value, recordError(span, err)
	}

	return value, nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}

func WithTracerProvider(tp trace.TracerProvider) func(*Compiler) {
	return func(c *Compiler) {
		c.tracer = tp.Tracer(tracerName)
	}
}

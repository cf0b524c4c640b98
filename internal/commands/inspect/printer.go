package inspect

import (
	"context"
	"io"

	"github.com/artuross/mini-compiler/internal/commands/inspect/config"
	"github.com/artuross/mini-compiler/internal/commands/inspect/dump"
	"github.com/artuross/mini-compiler/internal/defaults"
	"github.com/artuross/mini-compiler/internal/log/semconv"
	"github.com/artuross/mini-compiler/internal/transpiler/lexer"
	"github.com/artuross/mini-compiler/internal/transpiler/parser"
	"github.com/artuross/mini-compiler/internal/transpiler/transform"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/artuross/mini-compiler/internal/commands/inspect"

// Printer dumps the intermediate results of the pipeline.
type Printer struct {
	tracer trace.Tracer
}

func NewPrinter(options ...func(*Printer)) *Printer {
	printer := Printer{
		tracer: defaults.TracerProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&printer)
	}

	return &printer
}

func (p *Printer) Tokens(ctx context.Context, w io.Writer, cfg *config.Config, source string) error {
	_, span := p.start(ctx, "Tokens", cfg)
	defer span.End()

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return recordError(span, err)
	}

	span.SetAttributes(attribute.Int(semconv.TokenCount, len(tokens)))

	if err := dump.Write(w, cfg.Format, dump.Tokens(tokens)); err != nil {
		return recordError(span, err)
	}

	return nil
}

func (p *Printer) AST(ctx context.Context, w io.Writer, cfg *config.Config, source string) error {
	_, span := p.start(ctx, "AST", cfg)
	defer span.End()

	span.SetAttributes(attribute.Bool("target", cfg.Target))

	tree, err := buildTree(cfg, source)
	if err != nil {
		return recordError(span, err)
	}

	if err := dump.Write(w, cfg.Format, tree); err != nil {
		return recordError(span, err)
	}

	return nil
}

func (p *Printer) start(ctx context.Context, name string, cfg *config.Config) (context.Context, trace.Span) {
	return p.tracer.Start(
		ctx,
		name,
		trace.WithAttributes(
			attribute.String(semconv.InputPath, cfg.InputPath),
			attribute.String(semconv.Format, string(cfg.Format)),
		),
	)
}

func buildTree(cfg *config.Config, source string) (dump.Node, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	if !cfg.Target {
		return dump.LispTree(program)
	}

	target, err := transform.Transform(program)
	if err != nil {
		return nil, err
	}

	return dump.ClikeTree(target)
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}

func WithTracerProvider(tp trace.TracerProvider) func(*Printer) {
	return func(p *Printer) {
		p.tracer = tp.Tracer(tracerName)
	}
}

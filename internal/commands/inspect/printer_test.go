package inspect_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/artuross/mini-compiler/internal/commands/inspect"
	"github.com/artuross/mini-compiler/internal/commands/inspect/config"
	"github.com/artuross/mini-compiler/internal/commands/inspect/dump"
	"github.com/artuross/mini-compiler/internal/log/semconv"
	"github.com/artuross/mini-compiler/internal/transpiler/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newPrinter() (*inspect.Printer, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	return inspect.NewPrinter(inspect.WithTracerProvider(tracerProvider)), recorder
}

func TestPrinter(t *testing.T) {
	t.Run("tokens", func(t *testing.T) {
		printer, recorder := newPrinter()

		cfg := config.Config{Format: dump.FormatJSON, InputPath: config.StdPath}

		var buf bytes.Buffer
		err := printer.Tokens(context.Background(), &buf, &cfg, "(add 2 4)")
		require.NoError(t, err)

		assert.Contains(t, buf.String(), `"value": "add"`)

		spans := recorder.Ended()
		require.Len(t, spans, 1)

		assert.Equal(t, "Tokens", spans[0].Name())
		assert.Contains(t, spans[0].Attributes(), attribute.String(semconv.Format, "json"))
		assert.Contains(t, spans[0].Attributes(), attribute.Int(semconv.TokenCount, 5))
	})

	t.Run("ast / target", func(t *testing.T) {
		printer, recorder := newPrinter()

		cfg := config.Config{Format: dump.FormatYAML, InputPath: config.StdPath, Target: true}

		var buf bytes.Buffer
		err := printer.AST(context.Background(), &buf, &cfg, "(now)")
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "type: ExpressionStatement")

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "AST", spans[0].Name())
	})

	t.Run("ast / parse error", func(t *testing.T) {
		printer, recorder := newPrinter()

		cfg := config.Config{Format: dump.FormatPretty, InputPath: config.StdPath}

		var buf bytes.Buffer
		err := printer.AST(context.Background(), &buf, &cfg, "(add 2")
		assert.ErrorIs(t, err, parser.ErrUnexpectedEOF)
		assert.Empty(t, buf.String())

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
	})
}

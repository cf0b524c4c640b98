package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/artuross/mini-compiler/internal/commands/root"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type output struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func runApp(t *testing.T, stdin string, args ...string) (*output, error) {
	t.Helper()

	out := output{}

	app := root.NewCommand()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out.stdout
	app.ErrWriter = &out.stderr

	err := app.Run(append([]string{"transpiler"}, args...))

	t.Log("stdout:", out.stdout.String())
	t.Log("stderr:", out.stderr.String())

	return &out, err
}

func TestCommands(t *testing.T) {
	t.Run("compile / stdin", func(t *testing.T) {
		out, err := runApp(t, "(add 2 (subtract 4 2))", "compile")
		require.NoError(t, err)

		assert.Equal(t, "add(2, subtract(4, 2));\n", out.stdout.String())
	})

	t.Run("compile / files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lisp"), []byte(`(concat "a" "b")`), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.lisp"), []byte("(add 2 4)"), 0o644))

		_, err := runApp(t, "", "compile", "--output-dir", filepath.Join(dir, "out"), filepath.Join(dir, "a.lisp"), filepath.Join(dir, "b.lisp"))
		require.NoError(t, err)

		a, err := os.ReadFile(filepath.Join(dir, "out", "a.c"))
		require.NoError(t, err)
		assert.Equal(t, "concat('a', 'b');\n", string(a))

		b, err := os.ReadFile(filepath.Join(dir, "out", "b.c"))
		require.NoError(t, err)
		assert.Equal(t, "add(2, 4);\n", string(b))
	})

	t.Run("compile / error", func(t *testing.T) {
		out, err := runApp(t, "(add 2 #)", "compile")
		assert.Error(t, err)

		assert.Empty(t, out.stdout.String())
		assert.Contains(t, out.stderr.String(), "invalid character")
	})

	t.Run("compile / invalid config", func(t *testing.T) {
		_, err := runApp(t, "", "compile", "--concurrency", "0")
		assert.ErrorContains(t, err, "--concurrency")
	})

	t.Run("tokens", func(t *testing.T) {
		out, err := runApp(t, "(add 2)", "tokens", "--format", "yaml")
		require.NoError(t, err)

		assert.Contains(t, out.stdout.String(), "type: NAME\n  value: add\n")
	})

	t.Run("ast", func(t *testing.T) {
		out, err := runApp(t, "(add 2)", "ast", "--format", "json")
		require.NoError(t, err)

		assert.Contains(t, out.stdout.String(), `"name": "add"`)
		assert.Contains(t, out.stdout.String(), `"type": "NumberLiteral"`)
	})

	t.Run("ast / target", func(t *testing.T) {
		out, err := runApp(t, "(add 2)", "ast", "--format", "json", "--target")
		require.NoError(t, err)

		assert.Contains(t, out.stdout.String(), `"type": "ExpressionStatement"`)
	})

	t.Run("ast / parse error", func(t *testing.T) {
		out, err := runApp(t, "(add 2", "ast")
		assert.Error(t, err)

		assert.Contains(t, out.stderr.String(), "unexpected end of input")
	})
}

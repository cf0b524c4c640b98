package codegen_test

import (
	"testing"

	"github.com/artuross/mini-compiler/internal/transpiler/ast/clike"
	"github.com/artuross/mini-compiler/internal/transpiler/codegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(name string, args ...clike.Node) *clike.CallExpression {
	return &clike.CallExpression{
		Callee:    &clike.Identifier{Name: name},
		Arguments: args,
	}
}

func TestGenerate(t *testing.T) {
	type testCase struct {
		name   string
		input  clike.Node
		output string
	}

	testCases := []testCase{
		{
			name:   "identifier",
			input:  &clike.Identifier{Name: "add"},
			output: "add",
		},
		{
			name:   "number literal",
			input:  &clike.NumberLiteral{Value: "007"},
			output: "007",
		},
		{
			name:   "string literal",
			input:  &clike.StringLiteral{Value: "a b"},
			output: "'a b'",
		},
		{
			name:   "call expression / no arguments",
			input:  call("now"),
			output: "now()",
		},
		{
			name: "call expression / nested",
			input: call("add",
				&clike.NumberLiteral{Value: "2"},
				call("subtract", &clike.NumberLiteral{Value: "4"}, &clike.NumberLiteral{Value: "2"}),
			),
			output: "add(2, subtract(4, 2))",
		},
		{
			name:   "expression statement",
			input:  &clike.ExpressionStatement{Expression: call("f", &clike.StringLiteral{Value: "x"})},
			output: "f('x')",
		},
		{
			name: "program",
			input: &clike.Program{
				Body: []clike.Node{
					&clike.ExpressionStatement{Expression: call("add", &clike.NumberLiteral{Value: "2"}, &clike.NumberLiteral{Value: "4"})},
				},
			},
			output: "add(2, 4);",
		},
		{
			name: "program / multiple statements",
			input: &clike.Program{
				Body: []clike.Node{
					&clike.ExpressionStatement{Expression: call("a")},
					&clike.ExpressionStatement{Expression: call("b")},
				},
			},
			output: "a(); b();",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := codegen.Generate(tc.input)
			require.NoError(t, err)

			assert.Equal(t, tc.output, output)
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	type testCase struct {
		name  string
		input clike.Node
	}

	testCases := []testCase{
		{
			name:  "nil node",
			input: nil,
		},
		{
			name:  "statement without expression",
			input: &clike.ExpressionStatement{},
		},
		{
			name:  "call without callee",
			input: &clike.CallExpression{},
		},
		{
			name:  "nil program",
			input: (*clike.Program)(nil),
		},
		{
			name:  "nil statement",
			input: (*clike.ExpressionStatement)(nil),
		},
		{
			name:  "nil call expression",
			input: &clike.ExpressionStatement{Expression: (*clike.CallExpression)(nil)},
		},
		{
			name:  "nil identifier",
			input: &clike.CallExpression{Callee: (*clike.Identifier)(nil)},
		},
		{
			name:  "nil number literal",
			input: call("f", (*clike.NumberLiteral)(nil)),
		},
		{
			name:  "nil string literal",
			input: call("f", &clike.NumberLiteral{Value: "1"}, (*clike.StringLiteral)(nil)),
		},
		{
			name: "nested in program",
			input: &clike.Program{
				Body: []clike.Node{
					&clike.ExpressionStatement{Expression: call("f", nil)},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := codegen.Generate(tc.input)
			assert.Empty(t, output)

			assert.ErrorIs(t, err, codegen.ErrUnknownNode)

			var codeGenErr *codegen.CodeGenError
			assert.ErrorAs(t, err, &codeGenErr)
		})
	}
}

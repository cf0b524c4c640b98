package transform_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/artuross/mini-compiler/internal/transpiler/ast/clike"
	"github.com/artuross/mini-compiler/internal/transpiler/ast/lisp"
	"github.com/artuross/mini-compiler/internal/transpiler/transform"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// (add 2 (subtract 4 2))
func nestedProgram() *lisp.Program {
	return &lisp.Program{
		Body: []lisp.Node{
			&lisp.CallExpression{
				Name: "add",
				Params: []lisp.Node{
					&lisp.NumberLiteral{Value: "2"},
					&lisp.CallExpression{
						Name: "subtract",
						Params: []lisp.Node{
							&lisp.NumberLiteral{Value: "4"},
							&lisp.NumberLiteral{Value: "2"},
						},
					},
				},
			},
		},
	}
}

func TestTransform(t *testing.T) {
	type testCase struct {
		name   string
		input  *lisp.Program
		output *clike.Program
	}

	testCases := []testCase{
		{
			name:  "nested call is not a statement",
			input: nestedProgram(),
			output: &clike.Program{
				Body: []clike.Node{
					&clike.ExpressionStatement{
						Expression: &clike.CallExpression{
							Callee: &clike.Identifier{Name: "add"},
							Arguments: []clike.Node{
								&clike.NumberLiteral{Value: "2"},
								&clike.CallExpression{
									Callee: &clike.Identifier{Name: "subtract"},
									Arguments: []clike.Node{
										&clike.NumberLiteral{Value: "4"},
										&clike.NumberLiteral{Value: "2"},
									},
								},
							},
						},
					},
				},
			},
		},
		{
			name: "string literals",
			input: &lisp.Program{
				Body: []lisp.Node{
					&lisp.CallExpression{
						Name: "concat",
						Params: []lisp.Node{
							&lisp.StringLiteral{Value: "a"},
							&lisp.StringLiteral{Value: "b"},
						},
					},
				},
			},
			output: &clike.Program{
				Body: []clike.Node{
					&clike.ExpressionStatement{
						Expression: &clike.CallExpression{
							Callee: &clike.Identifier{Name: "concat"},
							Arguments: []clike.Node{
								&clike.StringLiteral{Value: "a"},
								&clike.StringLiteral{Value: "b"},
							},
						},
					},
				},
			},
		},
		{
			name: "call without params",
			input: &lisp.Program{
				Body: []lisp.Node{
					&lisp.CallExpression{Name: "now", Params: []lisp.Node{}},
				},
			},
			output: &clike.Program{
				Body: []clike.Node{
					&clike.ExpressionStatement{
						Expression: &clike.CallExpression{
							Callee:    &clike.Identifier{Name: "now"},
							Arguments: []clike.Node{},
						},
					},
				},
			},
		},
		{
			name: "top-level literal",
			input: &lisp.Program{
				Body: []lisp.Node{
					&lisp.NumberLiteral{Value: "42"},
				},
			},
			output: &clike.Program{
				Body: []clike.Node{
					&clike.NumberLiteral{Value: "42"},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := transform.Transform(tc.input)
			require.NoError(t, err)

			t.Log(pretty.Sprint(output))

			assert.Equal(t, tc.output, output)
		})
	}

	t.Run("does not modify input", func(t *testing.T) {
		input := nestedProgram()

		_, err := transform.Transform(input)
		require.NoError(t, err)

		assert.Equal(t, nestedProgram(), input)
	})
}

func TestTraverse(t *testing.T) {
	t.Run("enter and exit order", func(t *testing.T) {
		events := make([]string, 0)

		record := func(event string) {
			events = append(events, event)
		}

		visitor := transform.Visitor[int]{
			Program: transform.Hooks[*lisp.Program, int]{
				Enter: func(node *lisp.Program, parent lisp.Node, depth int) (int, error) {
					assert.Nil(t, parent)
					record("enter program")
					return depth + 1, nil
				},
				Exit: func(node *lisp.Program, parent lisp.Node, depth int) error {
					record("exit program")
					return nil
				},
			},
			CallExpression: transform.Hooks[*lisp.CallExpression, int]{
				Enter: func(node *lisp.CallExpression, parent lisp.Node, depth int) (int, error) {
					record(fmt.Sprintf("enter %s at %d", node.Name, depth))
					return depth + 1, nil
				},
				Exit: func(node *lisp.CallExpression, parent lisp.Node, depth int) error {
					record(fmt.Sprintf("exit %s at %d", node.Name, depth))
					return nil
				},
			},
			NumberLiteral: transform.Hooks[*lisp.NumberLiteral, int]{
				Exit: func(node *lisp.NumberLiteral, parent lisp.Node, depth int) error {
					call, ok := parent.(*lisp.CallExpression)
					require.True(t, ok)
					record(fmt.Sprintf("number %s in %s at %d", node.Value, call.Name, depth))
					return nil
				},
			},
		}

		err := transform.Traverse(nestedProgram(), visitor, 0)
		require.NoError(t, err)

		expected := []string{
			"enter program",
			"enter add at 1",
			"number 2 in add at 2",
			"enter subtract at 2",
			"number 4 in subtract at 3",
			"number 2 in subtract at 3",
			"exit subtract at 2",
			"exit add at 1",
			"exit program",
		}

		assert.Equal(t, expected, events)
	})

	t.Run("stops on error", func(t *testing.T) {
		errStop := errors.New("stop")

		visited := 0

		visitor := transform.Visitor[struct{}]{
			NumberLiteral: transform.Hooks[*lisp.NumberLiteral, struct{}]{
				Enter: func(node *lisp.NumberLiteral, parent lisp.Node, ctx struct{}) (struct{}, error) {
					visited++
					return ctx, errStop
				},
			},
		}

		err := transform.Traverse(nestedProgram(), visitor, struct{}{})
		assert.ErrorIs(t, err, errStop)
		assert.Equal(t, 1, visited)
	})

	t.Run("unknown node", func(t *testing.T) {
		programs := map[string]*lisp.Program{
			"nil node":       {Body: []lisp.Node{nil}},
			"nil call":       {Body: []lisp.Node{(*lisp.CallExpression)(nil)}},
			"nil number":     {Body: []lisp.Node{&lisp.CallExpression{Name: "f", Params: []lisp.Node{(*lisp.NumberLiteral)(nil)}}}},
			"nil string":     {Body: []lisp.Node{&lisp.CallExpression{Name: "f", Params: []lisp.Node{(*lisp.StringLiteral)(nil)}}}},
			"nil program":    nil,
			"nested program": {Body: []lisp.Node{&lisp.CallExpression{Name: "f", Params: []lisp.Node{(*lisp.Program)(nil)}}}},
		}

		for name, program := range programs {
			t.Run(name, func(t *testing.T) {
				err := transform.Traverse(program, transform.Visitor[struct{}]{}, struct{}{})
				assert.ErrorIs(t, err, transform.ErrUnknownNode)

				output, err := transform.Transform(program)
				assert.Nil(t, output)
				assert.ErrorIs(t, err, transform.ErrUnknownNode)
			})
		}
	})
}

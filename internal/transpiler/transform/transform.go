package transform

import (
	"fmt"

	"github.com/artuross/mini-compiler/internal/transpiler/ast/clike"
	"github.com/artuross/mini-compiler/internal/transpiler/ast/lisp"
)

// accumulator is the list new nodes are appended to. Each call expression
// hands its own argument list down to its params.
type accumulator = *[]clike.Node

// Transform builds a new c-like program from the parsed program. The input is not modified.
func Transform(program *lisp.Program) (*clike.Program, error) {
	if program == nil {
		return nil, fmt.Errorf("transform: %w: %T", ErrUnknownNode, program)
	}

	output := &clike.Program{
		Body: make([]clike.Node, 0, len(program.Body)),
	}

	visitor := Visitor[accumulator]{
		CallExpression: Hooks[*lisp.CallExpression, accumulator]{
			Enter: enterCallExpression,
		},
		NumberLiteral: Hooks[*lisp.NumberLiteral, accumulator]{
			Enter: func(node *lisp.NumberLiteral, _ lisp.Node, acc accumulator) (accumulator, error) {
				*acc = append(*acc, &clike.NumberLiteral{Value: node.Value})

				return nil, nil
			},
		},
		StringLiteral: Hooks[*lisp.StringLiteral, accumulator]{
			Enter: func(node *lisp.StringLiteral, _ lisp.Node, acc accumulator) (accumulator, error) {
				*acc = append(*acc, &clike.StringLiteral{Value: node.Value})

				return nil, nil
			},
		},
	}

	if err := Traverse(program, visitor, &output.Body); err != nil {
		return nil, err
	}

	return output, nil
}

func enterCallExpression(node *lisp.CallExpression, parent lisp.Node, acc accumulator) (accumulator, error) {
	call := &clike.CallExpression{
		Callee: &clike.Identifier{
			Name: node.Name,
		},
		Arguments: make([]clike.Node, 0, len(node.Params)),
	}

	var expression clike.Node = call

	// nested calls are arguments, only top-level calls become statements
	if _, isCall := parent.(*lisp.CallExpression); !isCall {
		expression = &clike.ExpressionStatement{
			Expression: call,
		}
	}

	*acc = append(*acc, expression)

	return &call.Arguments, nil
}

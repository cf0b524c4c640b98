package codegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artuross/mini-compiler/internal/transpiler/ast/clike"
)

var ErrUnknownNode = errors.New("unknown node kind")

// CodeGenError is returned for nodes the generator cannot render.
type CodeGenError struct {
	Node clike.Node
}

func (e *CodeGenError) Error() string {
	return fmt.Sprintf("codegen: %s: %T", ErrUnknownNode, e.Node)
}

func (e *CodeGenError) Unwrap() error {
	return ErrUnknownNode
}

// Generate renders the node as C-style source. Statements of a program are
// separated by "; " and the program ends with a single ";".
func Generate(node clike.Node) (string, error) {
	switch node := node.(type) {
	case *clike.Program:
		if node == nil {
			return "", &CodeGenError{Node: node}
		}

		statements, err := generateAll(node.Body)
		if err != nil {
			return "", err
		}

		return strings.Join(statements, "; ") + ";", nil

	case *clike.ExpressionStatement:
		if node == nil {
			return "", &CodeGenError{Node: node}
		}

		return Generate(node.Expression)

	case *clike.CallExpression:
		if node == nil {
			return "", &CodeGenError{Node: node}
		}

		callee, err := Generate(node.Callee)
		if err != nil {
			return "", err
		}

		args, err := generateAll(node.Arguments)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", ")), nil

	case *clike.Identifier:
		if node == nil {
			return "", &CodeGenError{Node: node}
		}

		return node.Name, nil

	case *clike.NumberLiteral:
		if node == nil {
			return "", &CodeGenError{Node: node}
		}

		return node.Value, nil

	case *clike.StringLiteral:
		if node == nil {
			return "", &CodeGenError{Node: node}
		}

		return fmt.Sprintf("'%s'", node.Value), nil

	default:
		return "", &CodeGenError{Node: node}
	}
}

func generateAll(nodes []clike.Node) ([]string, error) {
	output := make([]string, 0, len(nodes))

	for _, node := range nodes {
		value, err := Generate(node)
		if err != nil {
			return nil, err
		}

		output = append(output, value)
	}

	return output, nil
}

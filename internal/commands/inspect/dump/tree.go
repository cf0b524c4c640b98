package dump

import (
	"fmt"

	"github.com/artuross/mini-compiler/internal/transpiler/ast/clike"
	"github.com/artuross/mini-compiler/internal/transpiler/ast/lisp"
	"github.com/artuross/mini-compiler/internal/transpiler/lexer"
	"github.com/artuross/mini-compiler/internal/transpiler/transform"
)

type Token struct {
	Type   lexer.TokenType `json:"type" yaml:"type"`
	Value  string          `json:"value" yaml:"value"`
	Line   int             `json:"line" yaml:"line"`
	Column int             `json:"column" yaml:"column"`
}

// Node is a tree node with its kind stored under "type".
type Node map[string]any

func Tokens(tokens []*lexer.Token) []Token {
	output := make([]Token, 0, len(tokens))

	for _, token := range tokens {
		output = append(output, Token{
			Type:   token.Type,
			Value:  token.Value,
			Line:   token.Position.Start.Line,
			Column: token.Position.Start.Column,
		})
	}

	return output
}

// slot is the list of a record new children are added to.
type slot struct {
	record Node
	key    string
}

func (s slot) add(node Node) {
	list, _ := s.record[s.key].([]Node)
	s.record[s.key] = append(list, node)
}

func newRecord(kind string, fields ...any) Node {
	node := Node{"type": kind}

	for i := 0; i+1 < len(fields); i += 2 {
		node[fields[i].(string)] = fields[i+1]
	}

	return node
}

func LispTree(program *lisp.Program) (Node, error) {
	root := slot{record: Node{}, key: "root"}

	visitor := transform.Visitor[slot]{
		Program: transform.Hooks[*lisp.Program, slot]{
			Enter: func(node *lisp.Program, _ lisp.Node, parent slot) (slot, error) {
				record := newRecord("Program", "body", []Node{})
				parent.add(record)

				return slot{record: record, key: "body"}, nil
			},
		},
		CallExpression: transform.Hooks[*lisp.CallExpression, slot]{
			Enter: func(node *lisp.CallExpression, _ lisp.Node, parent slot) (slot, error) {
				record := newRecord("CallExpression", "name", node.Name, "params", []Node{})
				parent.add(record)

				return slot{record: record, key: "params"}, nil
			},
		},
		NumberLiteral: transform.Hooks[*lisp.NumberLiteral, slot]{
			Enter: func(node *lisp.NumberLiteral, _ lisp.Node, parent slot) (slot, error) {
				parent.add(newRecord("NumberLiteral", "value", node.Value))

				return parent, nil
			},
		},
		StringLiteral: transform.Hooks[*lisp.StringLiteral, slot]{
			Enter: func(node *lisp.StringLiteral, _ lisp.Node, parent slot) (slot, error) {
				parent.add(newRecord("StringLiteral", "value", node.Value))

				return parent, nil
			},
		},
	}

	if err := transform.Traverse(program, visitor, root); err != nil {
		return nil, err
	}

	nodes := root.record["root"].([]Node)

	return nodes[0], nil
}

func ClikeTree(node clike.Node) (Node, error) {
	switch node := node.(type) {
	case *clike.Program:
		if node == nil {
			return nil, fmt.Errorf("dump: missing node: %T", node)
		}

		body, err := clikeTrees(node.Body)
		if err != nil {
			return nil, err
		}

		return newRecord("Program", "body", body), nil

	case *clike.ExpressionStatement:
		if node == nil {
			return nil, fmt.Errorf("dump: missing node: %T", node)
		}

		expression, err := ClikeTree(node.Expression)
		if err != nil {
			return nil, err
		}

		return newRecord("ExpressionStatement", "expression", expression), nil

	case *clike.CallExpression:
		if node == nil {
			return nil, fmt.Errorf("dump: missing node: %T", node)
		}

		callee, err := ClikeTree(node.Callee)
		if err != nil {
			return nil, err
		}

		arguments, err := clikeTrees(node.Arguments)
		if err != nil {
			return nil, err
		}

		return newRecord("CallExpression", "callee", callee, "arguments", arguments), nil

	case *clike.Identifier:
		if node == nil {
			return nil, fmt.Errorf("dump: missing node: %T", node)
		}

		return newRecord("Identifier", "name", node.Name), nil

	case *clike.NumberLiteral:
		if node == nil {
			return nil, fmt.Errorf("dump: missing node: %T", node)
		}

		return newRecord("NumberLiteral", "value", node.Value), nil

	case *clike.StringLiteral:
		if node == nil {
			return nil, fmt.Errorf("dump: missing node: %T", node)
		}

		return newRecord("StringLiteral", "value", node.Value), nil

	default:
		return nil, fmt.Errorf("dump: unknown node: %T", node)
	}
}

func clikeTrees(nodes []clike.Node) ([]Node, error) {
	output := make([]Node, 0, len(nodes))

	for _, node := range nodes {
		tree, err := ClikeTree(node)
		if err != nil {
			return nil, err
		}

		output = append(output, tree)
	}

	return output, nil
}

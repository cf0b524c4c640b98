package transform

import (
	"errors"
	"fmt"

	"github.com/artuross/mini-compiler/internal/transpiler/ast/lisp"
)

var ErrUnknownNode = errors.New("unknown node")

// Hooks are called when the traversal enters and leaves a node of type N.
//
// Enter receives the context of the parent and returns the context handed to
// the node's children. When Enter is nil, children get the parent's context.
type Hooks[N lisp.Node, C any] struct {
	Enter func(node N, parent lisp.Node, ctx C) (C, error)
	Exit  func(node N, parent lisp.Node, ctx C) error
}

// Visitor has one set of hooks per node kind. Any hook may be left nil.
type Visitor[C any] struct {
	Program        Hooks[*lisp.Program, C]
	CallExpression Hooks[*lisp.CallExpression, C]
	NumberLiteral  Hooks[*lisp.NumberLiteral, C]
	StringLiteral  Hooks[*lisp.StringLiteral, C]
}

// Traverse walks the program depth first. The program itself is visited with
// a nil parent and the root context.
func Traverse[C any](program *lisp.Program, visitor Visitor[C], root C) error {
	t := traverser[C]{visitor: visitor}

	return t.traverseNode(program, nil, root)
}

type traverser[C any] struct {
	visitor Visitor[C]
}

func (t *traverser[C]) traverseNodes(nodes []lisp.Node, parent lisp.Node, ctx C) error {
	for _, node := range nodes {
		if err := t.traverseNode(node, parent, ctx); err != nil {
			return err
		}
	}

	return nil
}

func (t *traverser[C]) traverseNode(node lisp.Node, parent lisp.Node, ctx C) error {
	switch node := node.(type) {
	case *lisp.Program:
		if node == nil {
			return unknownNode(node)
		}

		return visit(node, parent, ctx, t.visitor.Program, func(childCtx C) error {
			return t.traverseNodes(node.Body, node, childCtx)
		})

	case *lisp.CallExpression:
		if node == nil {
			return unknownNode(node)
		}

		return visit(node, parent, ctx, t.visitor.CallExpression, func(childCtx C) error {
			return t.traverseNodes(node.Params, node, childCtx)
		})

	case *lisp.NumberLiteral:
		if node == nil {
			return unknownNode(node)
		}

		return visit(node, parent, ctx, t.visitor.NumberLiteral, nil)

	case *lisp.StringLiteral:
		if node == nil {
			return unknownNode(node)
		}

		return visit(node, parent, ctx, t.visitor.StringLiteral, nil)

	default:
		return unknownNode(node)
	}
}

func unknownNode(node lisp.Node) error {
	return fmt.Errorf("traverse: %w: %T", ErrUnknownNode, node)
}

func visit[N lisp.Node, C any](node N, parent lisp.Node, ctx C, hooks Hooks[N, C], children func(C) error) error {
	childCtx := ctx

	if hooks.Enter != nil {
		var err error

		childCtx, err = hooks.Enter(node, parent, ctx)
		if err != nil {
			return err
		}
	}

	if children != nil {
		if err := children(childCtx); err != nil {
			return err
		}
	}

	if hooks.Exit != nil {
		if err := hooks.Exit(node, parent, ctx); err != nil {
			return err
		}
	}

	return nil
}

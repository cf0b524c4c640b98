// Package lisp holds the tree produced by the parser from prefix-call source.
package lisp

var (
	_ Node = (*Program)(nil)
	_ Node = (*CallExpression)(nil)
	_ Node = (*NumberLiteral)(nil)
	_ Node = (*StringLiteral)(nil)
)

type Node interface {
	isNode()
}

type (
	Program struct {
		Body []Node
	}

	CallExpression struct {
		Name   string
		Params []Node
	}

	// NumberLiteral keeps the number as written in the source.
	NumberLiteral struct {
		Value string
	}

	StringLiteral struct {
		Value string
	}
)

func (n Program) isNode()        {}
func (n CallExpression) isNode() {}
func (n NumberLiteral) isNode()  {}
func (n StringLiteral) isNode()  {}

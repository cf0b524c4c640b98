// Package clike holds the tree rendered by the code generator as C-style calls.
package clike

var (
	_ Node = (*Program)(nil)
	_ Node = (*ExpressionStatement)(nil)
	_ Node = (*CallExpression)(nil)
	_ Node = (*Identifier)(nil)
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

	ExpressionStatement struct {
		Expression Node
	}

	CallExpression struct {
		Callee    *Identifier
		Arguments []Node
	}

	Identifier struct {
		Name string
	}

	NumberLiteral struct {
		Value string
	}

	StringLiteral struct {
		Value string
	}
)

func (n Program) isNode()             {}
func (n ExpressionStatement) isNode() {}
func (n CallExpression) isNode()      {}
func (n Identifier) isNode()          {}
func (n NumberLiteral) isNode()       {}
func (n StringLiteral) isNode()       {}

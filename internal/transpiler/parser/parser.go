package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/artuross/mini-compiler/internal/transpiler/ast/lisp"
	"github.com/artuross/mini-compiler/internal/transpiler/lexer"
)

var (
	ErrExpectedName    = errors.New("expected function name after '('")
	ErrUnbalancedParen = errors.New("unbalanced ')'")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// ParseError describes a token sequence that does not form a single well-formed expression.
// Token is nil when the input ended early.
type ParseError struct {
	Token *lexer.Token
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("parse: %s at token %d", e.Err, e.Index)
	}

	point := e.Token.Position.Start

	return fmt.Sprintf("parse: %s: %s %q at token %d (line %d, column %d)", e.Err, e.Token.Type, e.Token.Value, e.Index, point.Line, point.Column)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Lexer interface {
	ReadToken() (*lexer.Token, error)
}

type Parser struct {
	lexer  Lexer
	tokens []*lexer.Token
	pos    int
}

func NewParser(lexer Lexer) *Parser {
	return &Parser{
		lexer: lexer,
	}
}

// Parse builds a program from an already tokenized input.
func Parse(tokens []*lexer.Token) (*lisp.Program, error) {
	return NewParser(&tokenStream{tokens: tokens}).Parse()
}

func (p *Parser) Parse() (*lisp.Program, error) {
	node, err := p.walk()
	if err != nil {
		return nil, err
	}

	program := &lisp.Program{
		Body: []lisp.Node{node},
	}

	// only one top-level expression is allowed
	token, err := p.readToken()
	if err == io.EOF {
		return program, nil
	}
	if err != nil {
		return nil, err
	}

	if isParen(token, ")") {
		return nil, p.errorAt(token, ErrUnbalancedParen)
	}

	return nil, p.errorAt(token, ErrUnexpectedToken)
}

func (p *Parser) walk() (lisp.Node, error) {
	token, err := p.readToken()
	if err == io.EOF {
		return nil, p.errorAt(nil, ErrUnexpectedEOF)
	}
	if err != nil {
		return nil, err
	}

	switch {
	case token.Type == lexer.TokenTypeNumber:
		return &lisp.NumberLiteral{Value: token.Value}, nil

	case token.Type == lexer.TokenTypeString:
		return &lisp.StringLiteral{Value: token.Value}, nil

	case isParen(token, "("):
		return p.walkCallExpression()

	case isParen(token, ")"):
		return nil, p.errorAt(token, ErrUnbalancedParen)

	default:
		return nil, p.errorAt(token, ErrUnexpectedToken)
	}
}

// walkCallExpression is called after the opening paren was consumed and
// returns once the matching closing paren is consumed.
func (p *Parser) walkCallExpression() (lisp.Node, error) {
	token, err := p.readToken()
	if err == io.EOF {
		return nil, p.errorAt(nil, ErrUnexpectedEOF)
	}
	if err != nil {
		return nil, err
	}

	if token.Type != lexer.TokenTypeName {
		return nil, p.errorAt(token, ErrExpectedName)
	}

	node := &lisp.CallExpression{
		Name:   token.Value,
		Params: make([]lisp.Node, 0),
	}

	for {
		token, err := p.peekToken()
		if err == io.EOF {
			return nil, p.errorAt(nil, ErrUnexpectedEOF)
		}
		if err != nil {
			return nil, err
		}

		if isParen(token, ")") {
			// read and ignore the closing paren
			_, _ = p.readToken()

			return node, nil
		}

		param, err := p.walk()
		if err != nil {
			return nil, err
		}

		node.Params = append(node.Params, param)
	}
}

// errorAt must be called right after token was read, Index points at it.
func (p *Parser) errorAt(token *lexer.Token, err error) *ParseError {
	index := p.pos
	if token != nil {
		index = p.pos - 1
	}

	return &ParseError{
		Token: token,
		Index: index,
		Err:   err,
	}
}

func (p *Parser) peekToken() (*lexer.Token, error) {
	if p.pos >= len(p.tokens) {
		token, err := p.lexer.ReadToken()
		if err != nil {
			return nil, err
		}

		p.tokens = append(p.tokens, token)

		return token, nil
	}

	token := p.tokens[p.pos]

	return token, nil
}

func (p *Parser) readToken() (*lexer.Token, error) {
	token, err := p.peekToken()
	if err != nil {
		return nil, err
	}

	p.pos++

	return token, nil
}

func isParen(token *lexer.Token, value string) bool {
	return token.Type == lexer.TokenTypeParen && token.Value == value
}

type tokenStream struct {
	tokens []*lexer.Token
	pos    int
}

func (s *tokenStream) ReadToken() (*lexer.Token, error) {
	if s.pos >= len(s.tokens) {
		return nil, io.EOF
	}

	token := s.tokens[s.pos]
	s.pos++

	return token, nil
}

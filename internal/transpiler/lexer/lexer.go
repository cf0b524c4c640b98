package lexer

import (
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

type TokenType string

const (
	TokenTypeName   TokenType = "NAME"
	TokenTypeNumber TokenType = "NUMBER"
	TokenTypeParen  TokenType = "PAREN"
	TokenTypeString TokenType = "STRING"
)

var (
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrRuneInvalid        = errors.New("decode rune: invalid rune")
	ErrUnterminatedString = errors.New("unterminated string")
)

// LexError is returned when the input contains a character that does not start any token.
type LexError struct {
	Char     rune
	Position Point
	Err      error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex: %s %q at offset %d (line %d, column %d)", e.Err, e.Char, e.Position.Offset, e.Position.Line, e.Position.Column)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

type Point struct {
	Offset int
	Line   int
	Column int
}

type Position struct {
	Start Point
	End   Point
}

type Token struct {
	Type     TokenType
	RawValue string
	Value    string
	Position Position
}

type Lexer struct {
	input []byte
	point Point
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input: []byte(input),
		point: Point{Offset: 0, Line: 1, Column: 1},
	}
}

// Tokenize reads the whole input and returns every token in order.
func Tokenize(input string) ([]*Token, error) {
	lex := NewLexer(input)

	tokens := make([]*Token, 0)
	for {
		token, err := lex.ReadToken()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}
}

func (l *Lexer) ReadToken() (*Token, error) {
	if err := l.advanceWhitespace(); err != nil {
		return nil, err
	}

	r, _, err := l.peek()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}

	if isParen(r) {
		return l.readParen()
	}

	if isDigit(r) {
		return l.readNumber()
	}

	if isStringDelimiter(r) {
		return l.readString()
	}

	if isWordCharacter(r) {
		return l.readName()
	}

	return nil, &LexError{Char: r, Position: l.point, Err: ErrInvalidCharacter}
}

func (l *Lexer) advanceWhitespace() error {
	for {
		r, _, err := l.peek()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if !isWhitespace(r) {
			return nil
		}

		_, err = l.read()
		invariant(err != nil, "advanceWhitespace: unexpected read() error after peek()")
	}
}

func (l *Lexer) readParen() (*Token, error) {
	startPoint := l.point

	r, err := l.read()
	invariant(err != nil, "readParen: unexpected read() error when consuming first character")
	invariant(!isParen(r), "readParen: first character is not a paren")

	return l.newToken(TokenTypeParen, startPoint, string(r)), nil
}

func (l *Lexer) readNumber() (*Token, error) {
	startPoint := l.point

	// integers only, no sign, no decimal point
	if err := l.readWhile(isDigit); err != nil {
		return nil, err
	}

	value := string(l.input[startPoint.Offset:l.point.Offset])

	return l.newToken(TokenTypeNumber, startPoint, value), nil
}

func (l *Lexer) readName() (*Token, error) {
	startPoint := l.point

	if err := l.readWhile(isWordCharacter); err != nil {
		return nil, err
	}

	value := string(l.input[startPoint.Offset:l.point.Offset])

	return l.newToken(TokenTypeName, startPoint, value), nil
}

func (l *Lexer) readString() (*Token, error) {
	startPoint := l.point

	// discard the opening quote
	r, err := l.read()
	invariant(err != nil, "readString: unexpected read() error when consuming first character")
	invariant(!isStringDelimiter(r), "readString: first character is not valid")

	value := []rune{}

	for {
		r, _, err := l.peek()
		if err == io.EOF {
			return nil, &LexError{Char: '"', Position: startPoint, Err: ErrUnterminatedString}
		}
		if err != nil {
			return nil, err
		}

		_, err = l.read()
		invariant(err != nil, "readString: unexpected read() error after peek()")

		// no escape sequences, the next quote always closes the string
		if isStringDelimiter(r) {
			break
		}

		value = append(value, r)
	}

	return l.newToken(TokenTypeString, startPoint, string(value)), nil
}

// readWhile consumes runes as long as accept returns true.
func (l *Lexer) readWhile(accept func(rune) bool) error {
	for {
		r, _, err := l.peek()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if !accept(r) {
			return nil
		}

		_, err = l.read()
		invariant(err != nil, "readWhile: unexpected read() error after peek()")
	}
}

func (l *Lexer) newToken(tokenType TokenType, startPoint Point, value string) *Token {
	endPoint := l.point

	token := Token{
		Type: tokenType,
		Position: Position{
			Start: startPoint,
			End:   endPoint,
		},
		RawValue: string(l.input[startPoint.Offset:endPoint.Offset]),
		Value:    value,
	}

	return &token
}

func (l *Lexer) peek() (rune, int, error) {
	if l.point.Offset >= len(l.input) {
		return 0, 0, io.EOF
	}

	r, size := utf8.DecodeRune(l.input[l.point.Offset:])
	invariant(size == 0, "peek() called on an empty slice")

	// an encoded U+FFFD decodes with size 3
	if r == utf8.RuneError && size == 1 {
		return 0, 0, &LexError{Char: r, Position: l.point, Err: ErrRuneInvalid}
	}

	return r, size, nil
}

func (l *Lexer) read() (rune, error) {
	r, size, err := l.peek()
	if err != nil {
		return 0, err
	}

	l.point.Offset += size

	if r == '\n' {
		l.point.Line++
		l.point.Column = 1
	} else {
		l.point.Column++
	}

	return r, nil
}

func isParen(r rune) bool {
	return r == '(' || r == ')'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isWordCharacter matches letters, digits and underscores, so names may contain digits.
func isWordCharacter(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func isStringDelimiter(r rune) bool {
	return r == '"'
}

func invariant(assertion bool, message string) {
	if assertion {
		panic(message)
	}
}

package calc_go

import (
	"errors"
	"strconv"
)

// Lexer splits an expression into tokens. It keeps no state beyond its
// read offset, so a fresh Lexer is made for every input.
type Lexer struct {
	input_ string
	ofs_   int
}

func NewLexer(input string) *Lexer {
	ret := Lexer{}
	ret.Start(input)
	return &ret
}

// / Start lexing some input.
func (this *Lexer) Start(input string) {
	this.input_ = input
	this.ofs_ = 0
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// / Skip past whitespace (called before each token).
func (this *Lexer) EatWhitespace() {
	for this.ofs_ < len(this.input_) && isSpace(this.input_[this.ofs_]) {
		this.ofs_++
	}
}

// / Read a Token from the input. At the end of input a TEOF token is
// / returned; an unknown character yields an ERROR token and an error.
func (this *Lexer) ReadToken() (Token, error) {
	this.EatWhitespace()
	start := this.ofs_
	if start >= len(this.input_) {
		return Token{Type: TEOF, Pos: start}, nil
	}

	c := this.input_[start]
	switch {
	case isDigit(c):
		end := start
		for end < len(this.input_) && isDigit(this.input_[end]) {
			end++
		}
		this.ofs_ = end
		text := this.input_[start:end]
		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Token{Type: ERROR, Text: text, Pos: start},
					newEvalError(ErrNumberTooLarge, start, "%s", text)
			}
			return Token{Type: ERROR, Text: text, Pos: start},
				newEvalError(ErrInvalidCharacter, start, "%q", text)
		}
		return Token{Type: NUMBER, Text: text, Value: value, Pos: start}, nil
	case c == '(':
		this.ofs_++
		return Token{Type: LPAREN, Text: "(", Pos: start}, nil
	case c == ')':
		this.ofs_++
		return Token{Type: RPAREN, Text: ")", Pos: start}, nil
	case IsOperator(c):
		this.ofs_++
		return Token{Type: OPERATOR, Text: string(c), Pos: start}, nil
	}
	this.ofs_++
	return Token{Type: ERROR, Text: string(c), Pos: start},
		newEvalError(ErrInvalidCharacter, start, "%q", c)
}

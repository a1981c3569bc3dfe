package calc_go

import (
	"strings"
)

// TokenType enumerates what the lexer can recognise.
type TokenType uint8

const (
	ERROR TokenType = iota
	NUMBER
	OPERATOR
	LPAREN
	RPAREN
	TEOF
)

type Token struct {
	Type TokenType
	// Literal source text: the digits of a number, or the single character
	// of an operator or parenthesis.
	Text string
	// Value is only meaningful for NUMBER.
	Value int64
	// Byte offset of the token in its source.
	Pos int
}

// Op returns the operator character of an OPERATOR token.
func (t Token) Op() byte {
	if len(t.Text) == 0 {
		return 0
	}
	return t.Text[0]
}

func (t Token) String() string {
	if t.Type == TEOF {
		return "eof"
	}
	return t.Text
}

// / Return a human-readable form of a token type, used in error messages.
func TokenName(t TokenType) string {
	switch t {
	case ERROR:
		return "lexing error"
	case NUMBER:
		return "number"
	case OPERATOR:
		return "operator"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case TEOF:
		return "eof"
	}
	return "" // not reached
}

// Postfix is a token sequence in Reverse Polish order. It never holds
// parentheses.
type Postfix []Token

// String renders the sequence space-delimited, e.g. "3 4 2 * +".
func (p Postfix) String() string {
	parts := make([]string, 0, len(p))
	for _, tok := range p {
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}

// Counts returns the number of operand and operator tokens in p.
func (p Postfix) Counts() (operands, operators int) {
	for _, tok := range p {
		switch tok.Type {
		case NUMBER:
			operands++
		case OPERATOR:
			operators++
		}
	}
	return
}

// ParsePostfix reads the textual form produced by Postfix.String back into
// tokens. Numbers and operators may also be written without separating
// spaces where that is unambiguous ("3 4+").
func ParsePostfix(text string) (Postfix, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newEvalError(ErrEmptyExpression, -1, "")
	}
	lexer := NewLexer(text)
	var ret Postfix
	for {
		tok, err := lexer.ReadToken()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case TEOF:
			return ret, nil
		case NUMBER, OPERATOR:
			ret = append(ret, tok)
		default:
			return nil, newEvalError(ErrMalformedExpression, tok.Pos,
				"unexpected %s in postfix", TokenName(tok.Type))
		}
	}
}

package crontime

import "strconv"

// TokenKind represents the type of token.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenStar
	TokenDash
	TokenSlash
	TokenComma
	TokenSpace
	// TokenText is any run of bytes the grammar has no meaning for, such as
	// an unknown name.
	TokenText
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenStar:
		return "'*'"
	case TokenDash:
		return "'-'"
	case TokenSlash:
		return "'/'"
	case TokenComma:
		return "','"
	case TokenSpace:
		return "space"
	default:
		return "text"
	}
}

// Token represents a lexed token of a single field.
type Token struct {
	Kind      TokenKind
	Span      Span
	NumberVal int
}

// lexer is the internal lexer state.
type lexer struct {
	input string
	pos   int
}

// Tokenize splits one field's text into tokens. It never fails: bytes with
// no meaning in the grammar become TokenText and are rejected by the parser.
func Tokenize(input string) []Token {
	l := &lexer{input: input}
	return l.tokenize()
}

func (l *lexer) tokenize() []Token {
	var tokens []Token
	for l.pos < len(l.input) {
		start := l.pos
		ch := l.input[l.pos]

		switch {
		case isWhitespace(ch):
			for l.pos < len(l.input) && isWhitespace(l.input[l.pos]) {
				l.pos++
			}
			tokens = append(tokens, Token{Kind: TokenSpace, Span: Span{start, l.pos}})
		case isDigit(ch):
			tokens = append(tokens, l.lexNumber())
		case ch == '*' || ch == '-' || ch == '/' || ch == ',':
			l.pos++
			tokens = append(tokens, Token{Kind: punctuation[ch], Span: Span{start, l.pos}})
		default:
			for l.pos < len(l.input) && !isSignificant(l.input[l.pos]) {
				l.pos++
			}
			tokens = append(tokens, Token{Kind: TokenText, Span: Span{start, l.pos}})
		}
	}
	return tokens
}

func (l *lexer) lexNumber() Token {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	span := Span{start, l.pos}

	num, err := strconv.Atoi(l.input[start:l.pos])
	if err != nil {
		// Too large to be any field value.
		return Token{Kind: TokenText, Span: span}
	}
	return Token{Kind: TokenNumber, Span: span, NumberVal: num}
}

var punctuation = map[byte]TokenKind{
	'*': TokenStar,
	'-': TokenDash,
	'/': TokenSlash,
	',': TokenComma,
}

// Helper functions

func isSignificant(b byte) bool {
	_, ok := punctuation[b]
	return ok || isDigit(b) || isWhitespace(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

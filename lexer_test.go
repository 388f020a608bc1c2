package crontime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenKind
	}{
		{"", []TokenKind{}},
		{"*", []TokenKind{TokenStar}},
		{"*/15", []TokenKind{TokenStar, TokenSlash, TokenNumber}},
		{"1-5,7", []TokenKind{TokenNumber, TokenDash, TokenNumber, TokenComma, TokenNumber}},
		{"1 , 2", []TokenKind{TokenNumber, TokenSpace, TokenComma, TokenSpace, TokenNumber}},
		{"abc", []TokenKind{TokenText}},
		{"5x", []TokenKind{TokenNumber, TokenText}},
		{"a?b-c", []TokenKind{TokenText, TokenDash, TokenText}},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			assert.Equal(t, test.want, kinds(Tokenize(test.in)))
		})
	}
}

func TestTokenizeSpansAndValues(t *testing.T) {
	tokens := Tokenize("10-20/5")
	assert.Equal(t, []Token{
		{Kind: TokenNumber, Span: Span{0, 2}, NumberVal: 10},
		{Kind: TokenDash, Span: Span{2, 3}},
		{Kind: TokenNumber, Span: Span{3, 5}, NumberVal: 20},
		{Kind: TokenSlash, Span: Span{5, 6}},
		{Kind: TokenNumber, Span: Span{6, 7}, NumberVal: 5},
	}, tokens)
}

func TestTokenizeOverflowIsText(t *testing.T) {
	tokens := Tokenize("99999999999999999999999")
	assert.Equal(t, []TokenKind{TokenText}, kinds(tokens))
}

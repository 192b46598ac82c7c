package lexer

import (
	"testing"

	"github.com/glintlang/glint/pkg/token"
	"github.com/stretchr/testify/require"
)

func TestNextTokenCoreProgram(t *testing.T) {
	input := `let a = 0;
a = (a + 1) * 3;
if (a == 3 && !false || true != false) {
  return a;
} else {
  return -1;
}
puts("hi\n"); // trailing comment
[1, 2][0];
{1: 2}[1];
`

	expected := []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON,
		token.IDENT, token.ASSIGN, token.LPAREN, token.IDENT, token.PLUS, token.INT, token.RPAREN, token.ASTERISK, token.INT, token.SEMICOLON,
		token.IF, token.LPAREN, token.IDENT, token.EQ, token.INT, token.AND, token.BANG, token.FALSE, token.OR, token.TRUE, token.NOT_EQ, token.FALSE, token.RPAREN, token.LBRACE,
		token.RETURN, token.IDENT, token.SEMICOLON,
		token.RBRACE, token.ELSE, token.LBRACE,
		token.RETURN, token.MINUS, token.INT, token.SEMICOLON,
		token.RBRACE,
		token.IDENT, token.LPAREN, token.STRING, token.RPAREN, token.SEMICOLON,
		token.LBRACKET, token.INT, token.COMMA, token.INT, token.RBRACKET, token.LBRACKET, token.INT, token.RBRACKET, token.SEMICOLON,
		token.LBRACE, token.INT, token.COLON, token.INT, token.RBRACE, token.LBRACKET, token.INT, token.RBRACKET, token.SEMICOLON,
		token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		require.Equalf(t, want, tok.Type, "token %d: literal %q", i, tok.Literal)
	}
}

func TestNextTokenStringEscapes(t *testing.T) {
	l := New(`"a\nb\t\"c\""`)
	tok := l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, "a\nb\t\"c\"", tok.Literal)
}

func TestNextTokenUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Type)
}

func TestNextTokenIllegalBareAmpersand(t *testing.T) {
	l := New(`&`)
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Type)
}

func TestNextTokenPositions(t *testing.T) {
	l := New("let\na")
	first := l.NextToken()
	require.Equal(t, 1, first.Pos.Line)
	second := l.NextToken()
	require.Equal(t, 2, second.Pos.Line)
}

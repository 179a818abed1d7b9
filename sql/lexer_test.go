package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_TokenTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{
			name:  "basic select",
			input: "select * from data.parquet",
			want:  []TokenType{TokenSelect, TokenIdent, TokenFrom, TokenIdent, TokenEOF},
		},
		{
			name:  "comparison operators",
			input: "a = 1 and b != 2 or c <= 3",
			want: []TokenType{
				TokenIdent, TokenEqual, TokenNumber, TokenAnd,
				TokenIdent, TokenNotEqual, TokenNumber, TokenOr,
				TokenIdent, TokenLessEqual, TokenNumber, TokenEOF,
			},
		},
		{
			name:  "join keywords",
			input: "inner join left outer right full cross on using",
			want: []TokenType{
				TokenInner, TokenJoin, TokenLeft, TokenOuter, TokenRight,
				TokenFull, TokenCross, TokenOn, TokenUsing, TokenEOF,
			},
		},
		{
			name:  "mixed case keywords",
			input: "SELECT * FROM t WHERE x > 1",
			want: []TokenType{
				TokenSelect, TokenIdent, TokenFrom, TokenIdent,
				TokenWhere, TokenIdent, TokenGreater, TokenNumber, TokenEOF,
			},
		},
		{
			name:  "string and bool literals",
			input: "'hello' \"world\" true FALSE",
			want:  []TokenType{TokenString, TokenString, TokenBool, TokenBool, TokenEOF},
		},
		{
			name:  "parens and commas",
			input: "f(a, b)",
			want: []TokenType{
				TokenIdent, TokenLeftParen, TokenIdent, TokenComma,
				TokenIdent, TokenRightParen, TokenEOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			require.Len(t, tokens, len(tt.want))
			for i, tok := range tokens {
				assert.Equal(t, tt.want[i], tok.Type, "token %d (%q)", i, tok.Value)
			}
		})
	}
}

// The spatial words are non-reserved: the lexer must emit them as
// ordinary identifiers so existing queries that use them as table,
// column or alias names keep parsing.
func TestLexer_SpatialWordsAreIdentifiers(t *testing.T) {
	tokens := Tokenize("knn point knnPred KNN POINT PREDKNN")
	require.Len(t, tokens, 7)
	for _, tok := range tokens[:6] {
		assert.Equal(t, TokenIdent, tok.Type, "%q must lex as an identifier", tok.Value)
	}
	assert.Equal(t, TokenEOF, tokens[6].Type)
}

func TestLexer_Positions(t *testing.T) {
	tokens := Tokenize("select x\nfrom t")
	require.Len(t, tokens, 5)

	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column) // select
	assert.Equal(t, 1, tokens[1].Line)
	assert.Equal(t, 8, tokens[1].Column) // x
	assert.Equal(t, 2, tokens[2].Line)
	assert.Equal(t, 1, tokens[2].Column) // from
	assert.Equal(t, 2, tokens[3].Line)
	assert.Equal(t, 6, tokens[3].Column) // t
	assert.Equal(t, 2, tokens[4].Line)   // EOF sits one past the end
	assert.Equal(t, 7, tokens[4].Column)
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"3.14", "3.14"},
		{"-0.5", "-0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			require.Len(t, tokens, 2)
			assert.Equal(t, TokenNumber, tokens[0].Type)
			assert.Equal(t, tt.value, tokens[0].Value)
		})
	}
}

func TestLexer_InvalidCharacter(t *testing.T) {
	tokens := Tokenize("select ; from t")
	last := tokens[len(tokens)-1]
	assert.Equal(t, TokenError, last.Type)
	assert.Equal(t, ";", last.Value)
}

func TestLexer_StringEscapes(t *testing.T) {
	tokens := Tokenize(`'a\nb'`)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, "a\nb", tokens[0].Value)
}

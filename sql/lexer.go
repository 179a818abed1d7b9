package sql

import (
	"strings"
	"unicode"
)

// Lexer tokenizes SQL query strings
type Lexer struct {
	input  string
	pos    int
	ch     rune
	line   int
	column int
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// readChar reads the next character and advances the source position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = rune(l.input[l.pos])
		l.column++
	}
	l.pos++
}

// peekChar looks at the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return rune(l.input[l.pos])
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readString reads a quoted string
func (l *Lexer) readString(quote rune) string {
	var result strings.Builder
	l.readChar() // skip opening quote

	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				result.WriteRune('\n')
			case 't':
				result.WriteRune('\t')
			case '\\':
				result.WriteRune('\\')
			case quote:
				result.WriteRune(quote)
			default:
				result.WriteRune(l.ch)
			}
		} else {
			result.WriteRune(l.ch)
		}
		l.readChar()
	}

	if l.ch == quote {
		l.readChar() // skip closing quote
	}

	return result.String()
}

// readNumber reads a number
func (l *Lexer) readNumber() string {
	var result strings.Builder

	// Handle optional leading minus sign
	if l.ch == '-' {
		result.WriteRune(l.ch)
		l.readChar()
	}

	// Read digits and decimal point (but not additional minus signs)
	for unicode.IsDigit(l.ch) || l.ch == '.' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// readIdentifier reads an identifier or keyword (including file paths)
func (l *Lexer) readIdentifier() string {
	var result strings.Builder
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' || l.ch == '.' || l.ch == '/' || l.ch == '-' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	line, column := l.line, l.column
	if l.ch == 0 {
		// Position the EOF token one past the last character so that
		// errors at end of input point past the query text.
		column++
	}

	var tok Token

	switch l.ch {
	case 0:
		tok = Token{Type: TokenEOF, Value: ""}
	case '=':
		tok = Token{Type: TokenEqual, Value: "="}
		l.readChar()
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenNotEqual, Value: "!="}
			l.readChar()
		} else {
			tok = Token{Type: TokenError, Value: "!"}
			l.readChar()
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenLessEqual, Value: "<="}
			l.readChar()
		} else {
			tok = Token{Type: TokenLess, Value: "<"}
			l.readChar()
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenGreaterEqual, Value: ">="}
			l.readChar()
		} else {
			tok = Token{Type: TokenGreater, Value: ">"}
			l.readChar()
		}
	case '\'', '"':
		quote := l.ch
		tok = Token{Type: TokenString, Value: l.readString(quote)}
	case '*':
		tok = Token{Type: TokenIdent, Value: "*"}
		l.readChar()
	case ',':
		tok = Token{Type: TokenComma, Value: ","}
		l.readChar()
	case '(':
		tok = Token{Type: TokenLeftParen, Value: "("}
		l.readChar()
	case ')':
		tok = Token{Type: TokenRightParen, Value: ")"}
		l.readChar()
	default:
		if unicode.IsDigit(l.ch) || l.ch == '-' {
			value := l.readNumber()
			// Validate that a standalone minus sign is not treated as a number
			if value == "-" {
				tok = Token{Type: TokenError, Value: "-"}
			} else {
				tok = Token{Type: TokenNumber, Value: value}
			}
		} else if unicode.IsLetter(l.ch) || l.ch == '_' {
			value := l.readIdentifier()
			tok = Token{Type: identifierType(value), Value: value}
		} else {
			tok = Token{Type: TokenError, Value: string(l.ch)}
			l.readChar()
		}
	}

	tok.Line = line
	tok.Column = column
	return tok
}

// keywords maps reserved words to their token types. The spatial
// keywords (KNN, POINT, KNNPRED) are intentionally absent: they are
// non-reserved and matched contextually by the parser, so existing
// queries may keep using them as ordinary identifiers.
var keywords = map[string]TokenType{
	"select":    TokenSelect,
	"from":      TokenFrom,
	"where":     TokenWhere,
	"and":       TokenAnd,
	"or":        TokenOr,
	"as":        TokenAs,
	"group":     TokenGroup,
	"by":        TokenBy,
	"having":    TokenHaving,
	"order":     TokenOrder,
	"asc":       TokenAsc,
	"desc":      TokenDesc,
	"limit":     TokenLimit,
	"offset":    TokenOffset,
	"in":        TokenIn,
	"like":      TokenLike,
	"between":   TokenBetween,
	"is":        TokenIs,
	"not":       TokenNot,
	"null":      TokenNull,
	"distinct":  TokenDistinct,
	"case":      TokenCase,
	"when":      TokenWhen,
	"then":      TokenThen,
	"else":      TokenElse,
	"end":       TokenEnd,
	"with":      TokenWith,
	"recursive": TokenRecursive,
	"exists":    TokenExists,
	"join":      TokenJoin,
	"inner":     TokenInner,
	"left":      TokenLeft,
	"right":     TokenRight,
	"full":      TokenFull,
	"outer":     TokenOuter,
	"cross":     TokenCross,
	"on":        TokenOn,
	"using":     TokenUsing,
}

// identifierType determines if an identifier is a keyword
func identifierType(ident string) TokenType {
	lower := strings.ToLower(ident)
	if lower == "true" || lower == "false" {
		return TokenBool
	}
	if tokType, ok := keywords[lower]; ok {
		return tokType
	}
	return TokenIdent
}

// Tokenize returns all tokens from the input
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}

	return tokens
}

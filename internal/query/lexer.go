package query

import (
	"strings"
)

// reservedWords maps the lowercase form of each reserved word to its keyword
var reservedWords = map[string]Keyword{
	"select": KeywordSelect,
	"from":   KeywordFrom,
	"where":  KeywordWhere,
	"and":    KeywordAnd,
	"order":  KeywordOrder,
	"by":     KeywordBy,
	"asc":    KeywordAsc,
	"desc":   KeywordDesc,
	"limit":  KeywordLimit,
}

// Lexer tokenizes query strings
type Lexer struct {
	input   string
	tokens  []Token
	buf     strings.Builder
	inQuote bool
	quoted  bool // current buffer holds quoted characters
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Run scans the whole input and returns the token sequence.
//
// Spaces outside double quotes end a token. A comma outside quotes is
// dropped; a comma inside quotes ends the token and emits a separator.
// Double quotes toggle quoting and are never part of a token.
func (l *Lexer) Run() []Token {
	for _, ch := range l.input {
		switch {
		case ch == '"':
			l.inQuote = !l.inQuote
			l.quoted = true
		case ch == ',' && l.inQuote:
			l.flush()
			l.tokens = append(l.tokens, Token{Kind: TokenSeparator, Text: SeparatorText})
		case ch == ',':
			// structural comma, dropped
		case ch == ' ' && !l.inQuote:
			l.flush()
		default:
			l.buf.WriteRune(ch)
		}
	}
	l.flush()

	return l.tokens
}

// flush appends the buffered word, if any, as a token
func (l *Lexer) flush() {
	quoted := l.quoted
	l.quoted = false
	if l.buf.Len() == 0 {
		return
	}

	word := l.buf.String()
	l.buf.Reset()
	l.tokens = append(l.tokens, classify(word, quoted))
}

// classify builds the token for a word. Reserved words are matched
// case-insensitively and normalized to uppercase.
func classify(word string, quoted bool) Token {
	if kw, ok := reservedWords[strings.ToLower(word)]; ok {
		return Token{Kind: TokenKeyword, Keyword: kw, Text: kw.String()}
	}
	if quoted {
		return Token{Kind: TokenLiteral, Text: word}
	}
	return Token{Kind: TokenIdent, Text: word}
}

// Tokenize returns all tokens from the input
func Tokenize(input string) []Token {
	return NewLexer(input).Run()
}

// Texts returns the text of each token, in order
func Texts(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Query is a tokenized query. The token sequence is the parsed form:
// every clause accessor scans it on demand and never modifies it.
type Query struct {
	tokens []Token
}

// New tokenizes input into a Query without validating it
func New(input string) *Query {
	return &Query{tokens: Tokenize(input)}
}

// Parse tokenizes input and checks its size limits and overall shape
func Parse(input string) (*Query, error) {
	if err := ValidateQuery(input); err != nil {
		return nil, err
	}

	q := New(input)
	if err := ValidateTokens(q.tokens); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Tokens returns a copy of the token sequence
func (q *Query) Tokens() []Token {
	tokens := make([]Token, len(q.tokens))
	copy(tokens, q.tokens)
	return tokens
}

// Validate fails when the query is empty or does not start with SELECT
func (q *Query) Validate() error {
	if len(q.tokens) == 0 || !q.tokens[0].Is(KeywordSelect) {
		return fmt.Errorf("%w: query must start with SELECT", ErrSyntax)
	}
	return nil
}

// index returns the position of the first occurrence of kw, or -1
func (q *Query) index(kw Keyword) int {
	for i, tok := range q.tokens {
		if tok.Is(kw) {
			return i
		}
	}
	return -1
}

// at returns the token at i and whether i is in range
func (q *Query) at(i int) (Token, bool) {
	if i < 0 || i >= len(q.tokens) {
		return Token{}, false
	}
	return q.tokens[i], true
}

// FilePath returns the token following FROM
func (q *Query) FilePath() (string, error) {
	from := q.index(KeywordFrom)
	tok, ok := q.at(from + 1)
	if from < 0 || !ok {
		return "", fmt.Errorf("%w: FROM must specify a file path", ErrSyntax)
	}
	if err := ValidateTableName(tok.Text); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return tok.Text, nil
}

// Select returns the requested column names, in order. The result is
// []string{Wildcard} for SELECT *, and empty when nothing sits between
// SELECT and FROM.
func (q *Query) Select() []string {
	start := q.index(KeywordSelect)
	if start < 0 {
		return nil
	}

	var columns []string
	for _, tok := range q.tokens[start+1:] {
		if tok.Is(KeywordFrom) {
			break
		}
		if tok.Kind == TokenSeparator {
			continue
		}
		columns = append(columns, tok.Text)
	}
	return columns
}

// IsWildcard reports whether a select list means every column
func IsWildcard(columns []string) bool {
	return len(columns) == 1 && columns[0] == Wildcard
}

// Limit returns the row cap following LIMIT. One leading + is accepted.
// Zero means unlimited and is also returned when LIMIT is missing, last, or
// not an unsigned integer.
func (q *Query) Limit() uint {
	pos := q.index(KeywordLimit)
	if pos < 0 {
		return 0
	}
	tok, ok := q.at(pos + 1)
	if !ok {
		return 0
	}

	n, err := strconv.ParseUint(strings.TrimPrefix(tok.Text, "+"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

// Order returns the ORDER BY clause. The column is read two tokens
// after ORDER whatever the token in between is; the direction defaults to
// ascending unless the next token is ASC or DESC.
func (q *Query) Order() Order {
	order := Order{Direction: Ascending}

	pos := q.index(KeywordOrder)
	if pos < 0 {
		return order
	}

	if tok, ok := q.at(pos + 2); ok {
		order.Column = tok.Text
	}
	if tok, ok := q.at(pos + 3); ok && tok.Is(KeywordDesc) {
		order.Direction = Descending
	}
	return order
}

// Where returns the predicates of the WHERE clause, in order
func (q *Query) Where() []Predicate {
	pos := q.index(KeywordWhere)
	if pos <= 0 {
		return nil
	}

	tail := make([]Token, 0, len(q.tokens)-pos)
	for _, tok := range q.tokens[pos+1:] {
		if tok.Is(KeywordAnd) {
			continue
		}
		tail = append(tail, tok)
	}

	return newPredicateParser(tail).parse()
}

// predicateParser reads column/operator/value triples from a WHERE tail
// that has had its AND tokens removed
type predicateParser struct {
	tokens []Token
	pos    int
}

func newPredicateParser(tokens []Token) *predicateParser {
	return &predicateParser{tokens: tokens}
}

// remaining returns the number of unread tokens
func (p *predicateParser) remaining() int {
	return len(p.tokens) - p.pos
}

// current returns the current token
func (p *predicateParser) current() Token {
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *predicateParser) advance() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// parse reads predicates until a clause keyword or an incomplete group
func (p *predicateParser) parse() []Predicate {
	var predicates []Predicate
	for p.remaining() >= 3 {
		if p.current().Kind == TokenKeyword {
			break
		}
		predicates = append(predicates, p.parsePredicate())
	}
	return predicates
}

// parsePredicate reads one column, operator and value
func (p *predicateParser) parsePredicate() Predicate {
	column := p.advance()
	operator := p.advance()
	value := p.advance()
	return Predicate{
		Column:   column.Text,
		Operator: Operator(operator.Text),
		Value:    value.Text,
	}
}

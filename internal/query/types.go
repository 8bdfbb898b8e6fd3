// Package query provides tokenizing and clause extraction for tabcat queries.
//
// A query has the shape
//
//	SELECT <columns|*> FROM <path> [WHERE <col> <op> <value> [AND ...]] [ORDER BY <col> [ASC|DESC]] [LIMIT <n>]
//
// Parsing is lazy: Tokenize turns the query text into an immutable token
// sequence, and each clause accessor on Query scans that sequence on demand.
// Only the leading SELECT is checked up front. Clause anomalies such as an
// unparsable LIMIT fall back to defaults instead of failing.
//
// Example usage:
//
//	q, err := query.Parse("select id, name from ./people.csv where age > 30 limit 5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := q.FilePath()
package query

// TokenKind represents the kind of a token
type TokenKind int

const (
	// TokenKeyword is a reserved word; its text is always uppercase
	TokenKeyword TokenKind = iota
	// TokenIdent is any unquoted word: column names, paths, operators, values
	TokenIdent
	// TokenLiteral is a word that had at least one double-quoted part
	TokenLiteral
	// TokenSeparator is a comma that appeared inside double quotes
	TokenSeparator
)

func (k TokenKind) String() string {
	switch k {
	case TokenKeyword:
		return "keyword"
	case TokenIdent:
		return "ident"
	case TokenLiteral:
		return "literal"
	case TokenSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Keyword identifies a reserved word
type Keyword int

const (
	KeywordNone Keyword = iota
	KeywordSelect
	KeywordFrom
	KeywordWhere
	KeywordAnd
	KeywordOrder
	KeywordBy
	KeywordAsc
	KeywordDesc
	KeywordLimit
)

var keywordNames = map[Keyword]string{
	KeywordSelect: "SELECT",
	KeywordFrom:   "FROM",
	KeywordWhere:  "WHERE",
	KeywordAnd:    "AND",
	KeywordOrder:  "ORDER",
	KeywordBy:     "BY",
	KeywordAsc:    "ASC",
	KeywordDesc:   "DESC",
	KeywordLimit:  "LIMIT",
}

func (k Keyword) String() string {
	return keywordNames[k]
}

// SeparatorText is the text carried by a TokenSeparator
const SeparatorText = ","

// Wildcard selects every column of the table
const Wildcard = "*"

// Token represents a lexical token
type Token struct {
	Kind    TokenKind
	Keyword Keyword // set only when Kind is TokenKeyword
	Text    string
}

// Is reports whether the token is the given keyword
func (t Token) Is(kw Keyword) bool {
	return t.Kind == TokenKeyword && t.Keyword == kw
}

// Direction is the sort direction of an ORDER BY clause
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Order is the ORDER BY clause. An empty Column means no ordering.
type Order struct {
	Column    string
	Direction Direction
}

// Operator is a predicate comparison operator
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpLess         Operator = "<"
	OpGreater      Operator = ">"
	OpLessEqual    Operator = "<="
	OpGreaterEqual Operator = ">="
)

// Relational reports whether the operator compares numerically
func (o Operator) Relational() bool {
	switch o {
	case OpLess, OpGreater, OpLessEqual, OpGreaterEqual:
		return true
	default:
		return false
	}
}

// Predicate is one WHERE condition. Predicates of a query are ANDed.
type Predicate struct {
	Column   string
	Operator Operator
	Value    string
}

package query

import (
	"errors"
	"fmt"
)

// Validation constants to prevent resource exhaustion
const (
	// MaxQueryLength is the maximum allowed query string length (1MB)
	MaxQueryLength = 1024 * 1024

	// MaxTokens is the maximum number of tokens in a query
	MaxTokens = 1000

	// MaxTableNameLength is the maximum length for a FROM path
	MaxTableNameLength = 4096
)

var (
	// ErrSyntax is the kind of every structural query error
	ErrSyntax = errors.New("syntax error")

	// ErrQueryTooLong is returned when query exceeds MaxQueryLength
	ErrQueryTooLong = errors.New("query too long")

	// ErrTooManyTokens is returned when query has too many tokens
	ErrTooManyTokens = errors.New("too many tokens in query")

	// ErrTableNameTooLong is returned when the FROM path is too long
	ErrTableNameTooLong = errors.New("table name too long")

	// ErrEmptyTableName is returned when the FROM path is empty
	ErrEmptyTableName = errors.New("table name cannot be empty")
)

// ValidateQuery performs size validation on query input
func ValidateQuery(input string) error {
	if len(input) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(input), MaxQueryLength)
	}
	return nil
}

// ValidateTokens validates token count
func ValidateTokens(tokens []Token) error {
	if len(tokens) > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	return nil
}

// ValidateTableName validates FROM path length and content
func ValidateTableName(name string) error {
	if name == "" {
		return ErrEmptyTableName
	}
	if len(name) > MaxTableNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrTableNameTooLong, len(name), MaxTableNameLength)
	}
	return nil
}

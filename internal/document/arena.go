package document

import (
	"fmt"

	"fortio.org/safecast"

	"asmdiff/internal/token"
)

// TokenID addresses a token in the whole-document stream.
type TokenID uint32

// StmtID addresses a statement in document order.
type StmtID uint32

const (
	NoTokenID TokenID = 0
	NoStmtID  StmtID  = 0
)

// IsValid reports whether the ID refers to a token.
func (id TokenID) IsValid() bool { return id != NoTokenID }

// IsValid reports whether the ID refers to a statement.
func (id StmtID) IsValid() bool { return id != NoStmtID }

// Tokens stores the whole-document token stream; arena order is input order.
type Tokens struct {
	data []token.Token
}

func newTokens(capacity uint32) *Tokens {
	if capacity == 0 {
		capacity = 256
	}
	return &Tokens{
		data: make([]token.Token, 1, capacity+1), // index 0 reserved for NoTokenID
	}
}

// New appends tok and returns its ID.
func (a *Tokens) New(tok token.Token) TokenID {
	value, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("tokens arena overflow: %w", err))
	}
	a.data = append(a.data, tok)
	return TokenID(value)
}

// Get returns the token pointer or nil for an invalid ID.
func (a *Tokens) Get(id TokenID) *token.Token {
	if !id.IsValid() || int(id) >= len(a.data) {
		return nil
	}
	return &a.data[id]
}

// Len reports number of stored tokens excluding the sentinel.
func (a *Tokens) Len() int { return len(a.data) - 1 }

// Data exposes the arena storage without the sentinel.
func (a *Tokens) Data() []token.Token {
	if len(a.data) <= 1 {
		return nil
	}
	return a.data[1:]
}

// Statements stores statements in document order.
type Statements struct {
	data []Statement
}

func newStatements(capacity uint32) *Statements {
	if capacity == 0 {
		capacity = 64
	}
	return &Statements{
		data: make([]Statement, 1, capacity+1), // index 0 reserved for NoStmtID
	}
}

// New appends st and returns its ID.
func (a *Statements) New(st Statement) StmtID {
	value, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("statements arena overflow: %w", err))
	}
	a.data = append(a.data, st)
	return StmtID(value)
}

// Get returns the statement pointer or nil for an invalid ID.
func (a *Statements) Get(id StmtID) *Statement {
	if !id.IsValid() || int(id) >= len(a.data) {
		return nil
	}
	return &a.data[id]
}

// Len reports number of stored statements excluding the sentinel.
func (a *Statements) Len() int { return len(a.data) - 1 }

// Package diagnostics defines the error taxonomy of §7: user-facing
// parse/empty-input errors that are collected and returned, and the
// iteration-cap warning emitted by the rewrite engine.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/derivex/internal/token"
)

// Phase identifies which pipeline stage raised a diagnostic.
type Phase string

const (
	PhaseLexer   Phase = "lexer"
	PhaseParser  Phase = "parser"
	PhaseRewrite Phase = "rewrite"
)

type ErrorCode string

const (
	ErrEmptyInput    ErrorCode = "E001" // no input found
	ErrNoExpression  ErrorCode = "P002" // unexpected token, expected an expression
	ErrMissingParen  ErrorCode = "P003" // missing closing ')'
	ErrTrailingToken ErrorCode = "P004" // unexpected token after a complete expression
	ErrIterationCap  ErrorCode = "R001" // rewrite engine exceeded its per-node iteration cap
)

var errorTemplates = map[ErrorCode]string{
	ErrEmptyInput:    "no input found, skipping",
	ErrNoExpression:  "unexpected token, expected an expression",
	ErrMissingParen:  "unexpected token, expected a '(' token",
	ErrTrailingToken: "unexpected token",
	ErrIterationCap:  "%s",
}

// DiagnosticError is a user-facing, non-fatal diagnostic: it is collected
// alongside a (possibly partial) tree rather than aborting the pipeline
// (§7 propagation policy).
type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Token token.Token
	Args  []interface{}
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown diagnostic code: %s", e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)
	if e.Code == ErrEmptyInput || e.Phase == PhaseRewrite {
		return message
	}
	return fmt.Sprintf("%d:%d: %s", e.Token.Line, e.Token.Column, message)
}

func New(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Args: args}
}

// EmptyInput is the named error for §4.9's empty-input case: reported
// without attempting to parse.
func EmptyInput() *DiagnosticError {
	return &DiagnosticError{Code: ErrEmptyInput}
}

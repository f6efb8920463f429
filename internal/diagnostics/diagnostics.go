// Package diagnostics defines the analyzer's two observable failure
// modes: SymbolError and TypeError. Both share the same
// DiagnosticError shape, so error messages stay consistent whether
// they come from symbol resolution or unification.
package diagnostics

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/funxy/internal/token"
)

// Code identifies the kind of error. TIP only ever raises two.
type Code string

const (
	ErrSymbol Code = "E_SYM001" // unbound identifier use
	ErrType   Code = "E_TYP001" // unification failure
)

var templates = map[Code]string{
	ErrSymbol: "unbound identifier: '%s'",
	ErrType:   "cannot unify %s and %s",
}

// DiagnosticError is the concrete error type returned by the symbol
// resolver and the unification solver.
type DiagnosticError struct {
	Code  Code
	Token token.Token
	Args  []interface{}
	File  string

	// Snippet is the offending statement or expression rendered back to
	// TIP surface syntax, via package prettyprinter. Set by the caller
	// that has AST context (the symbol resolver, the analyzer's
	// unification loop); empty when no such context was available.
	Snippet string
}

func (e *DiagnosticError) Error() string {
	template, ok := templates[e.Code]
	if !ok {
		template = string(e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)

	prefix := ""
	if e.File != "" {
		prefix = e.File + ":"
	}
	if e.Snippet != "" {
		message = fmt.Sprintf("%s\n    %s", message, e.Snippet)
	}
	if e.Token.Line > 0 {
		return fmt.Sprintf("%s%d:%d: [%s] %s", prefix, e.Token.Line, e.Token.Column, e.Code, message)
	}
	return fmt.Sprintf("%s[%s] %s", prefix, e.Code, message)
}

// NewSymbolError builds the error the symbol resolver raises for an
// unbound use of name, carrying the token so diagnostics can print the
// source line.
func NewSymbolError(tok token.Token, name string) *DiagnosticError {
	return &DiagnosticError{Code: ErrSymbol, Token: tok, Args: []interface{}{name}}
}

// NewTypeError builds the error the unifier raises on a structural
// mismatch, carrying the two offending terms. left/right
// are pre-rendered strings rather than *typesystem.Term to avoid an
// import cycle between diagnostics and typesystem.
func NewTypeError(tok token.Token, left, right string) *DiagnosticError {
	return &DiagnosticError{Code: ErrType, Token: tok, Args: []interface{}{left, right}}
}

// Render formats err for a human, adding ANSI color around the error
// code and location when stdout is a terminal. Never called by the
// solver or resolver themselves, purely a presentation helper for CLIs
// and tests built on top of this package.
func Render(err *DiagnosticError) string {
	if err == nil {
		return ""
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return err.Error()
	}
	const (
		red   = "\x1b[31m"
		bold  = "\x1b[1m"
		reset = "\x1b[0m"
	)
	loc := fmt.Sprintf("%d:%d", err.Token.Line, err.Token.Column)
	out := fmt.Sprintf("%s%s%s %s[%s]%s %s", bold, loc, reset, red, err.Code, reset, fmt.Sprintf(templates[err.Code], err.Args...))
	if err.Snippet != "" {
		out = fmt.Sprintf("%s\n    %s", out, err.Snippet)
	}
	return out
}

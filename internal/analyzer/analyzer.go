// Package analyzer drives TIP's type inference pipeline end to end:
// symbol resolution, constraint generation, unification, and closure.
// Analyze is the single entry point other packages (a CLI, a test)
// call.
package analyzer

import (
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/prettyprinter"
	"github.com/funvibe/funxy/internal/symbols"
	"github.com/funvibe/funxy/internal/typesystem"
)

// Analyze resolves, generates, and solves prog, returning a Result
// that answers type_of for every expression reachable from it.
// Failure is either a SymbolError (from symbol resolution) or a
// TypeError (from unification); both are *diagnostics.DiagnosticError.
func Analyze(prog *ast.Program) (*Result, error) {
	symtab, err := symbols.Resolve(prog)
	if err != nil {
		return nil, err
	}

	gen := newGenerator(symtab)
	prog.Accept(gen)

	for _, c := range gen.constraints {
		if err := typesystem.Unify(c.Left, c.Right, c.Tok); err != nil {
			if diagErr, ok := err.(*diagnostics.DiagnosticError); ok {
				diagErr.Snippet = renderSnippet(c.Node)
			}
			return nil, err
		}
	}

	return newResult(gen), nil
}

// renderSnippet prints node back to TIP surface syntax for a
// TypeError's Snippet field. node is nil when the failing constraint
// has no single AST site to blame (e.g. an implicit `main` return
// check), in which case the error carries no snippet.
func renderSnippet(node ast.Node) string {
	switch n := node.(type) {
	case ast.Expression:
		return prettyprinter.Print(n)
	case ast.Statement:
		return prettyprinter.PrintStatement(n)
	default:
		return ""
	}
}

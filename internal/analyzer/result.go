package analyzer

import (
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/closure"
	"github.com/funvibe/funxy/internal/typesystem"
)

// Result exposes type_of(expr) plus iteration over every (expr, term)
// pair the generator touched, keyed by stable expression identity
// rather than pointer value.
type Result struct {
	nodes map[ast.NodeID]ast.Expression
	types map[ast.NodeID]*typesystem.Term
}

// TypeOf returns e's solved, closed type term and whether e was ever
// visited by the generator.
func (r *Result) TypeOf(e ast.Expression) (*typesystem.Term, bool) {
	t, ok := r.types[e.ID()]
	return t, ok
}

// Pair is one (expression, term) entry, as returned by All.
type Pair struct {
	Expr ast.Expression
	Term *typesystem.Term
}

// All returns every expression the generator associated with a term,
// each already closed.
func (r *Result) All() []Pair {
	pairs := make([]Pair, 0, len(r.nodes))
	for id, expr := range r.nodes {
		pairs = append(pairs, Pair{Expr: expr, Term: r.types[id]})
	}
	return pairs
}

func newResult(g *generator) *Result {
	types := make(map[ast.NodeID]*typesystem.Term, len(g.nodeVars))
	for id, t := range g.nodeVars {
		types[id] = closure.Close(t)
	}
	return &Result{nodes: g.nodes, types: types}
}

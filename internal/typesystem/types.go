// Package typesystem implements TIP's type term language and a
// union-find based unification solver. Unlike a
// substitution-map unifier, terms here are mutable nodes linked by a
// `parent` pointer; unifying two terms links one root to the other
// in place, and `Find` follows + compresses that chain. No occurs
// check is performed: a term is allowed to unify with something that
// contains it, producing a cycle that the closure pass (package
// closure) later turns into an explicit recursive type.
package typesystem

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/funvibe/funxy/internal/config"
)

// Kind distinguishes the term variants: base types, pointers,
// functions, type variables, and recursive (μ-bound) types.
type Kind int

const (
	KindVar Kind = iota
	KindInt
	KindString
	KindPtr
	KindFun
	KindRec
)

// Term is a node in the union-find type graph. Exactly the fields for
// its Kind are meaningful; the rest are zero. A Term with a non-nil
// parent is not a root: callers should always go through Find before
// inspecting Kind or any variant field, since a Var's parent may have
// been bound to an arbitrary term by Unify.
type Term struct {
	parent *Term
	Kind   Kind

	id int64 // KindVar, KindRec (the binder's identity)

	Elem *Term // KindPtr

	Params []*Term // KindFun
	Ret    *Term   // KindFun

	Binder *Term // KindRec: always a KindVar term
	Body   *Term // KindRec
}

var varCounter int64

// NewVar allocates a fresh, unbound type variable.
func NewVar() *Term {
	id := atomic.AddInt64(&varCounter, 1)
	return &Term{Kind: KindVar, id: id}
}

// Int, String return (distinct) constant base-type terms. They have no
// substructure; the only thing Unify changes on one is its parent link,
// when it joins two equal base types into one class.
func Int() *Term    { return &Term{Kind: KindInt} }
func String() *Term { return &Term{Kind: KindString} }

// Ptr builds a pointer-to-elem term.
func Ptr(elem *Term) *Term { return &Term{Kind: KindPtr, Elem: elem} }

// Fun builds a function term with the given parameter terms and
// return term.
func Fun(params []*Term, ret *Term) *Term {
	return &Term{Kind: KindFun, Params: params, Ret: ret}
}

// Rec wraps body in a μ-binder over binder, which must be a KindVar
// term. Built only by the closure pass.
func Rec(binder, body *Term) *Term {
	return &Term{Kind: KindRec, id: binder.id, Binder: binder, Body: body}
}

// Find returns the representative term for t, following and
// compressing the union-find parent chain.
func Find(t *Term) *Term {
	root := t
	for root.parent != nil {
		root = root.parent
	}
	for t.parent != nil {
		next := t.parent
		t.parent = root
		t = next
	}
	return root
}

// union links a's root to point at b's root directly, without
// checking that doing so is sound: callers (Unify) have already
// decided that. Kept unexported since only this package's solver
// should ever call it.
func union(a, b *Term) {
	ra, rb := Find(a), Find(b)
	if ra == rb {
		return
	}
	ra.parent = rb
}

// String renders t in TIP's fixed display format (int, string, ↑T,
// (T1, ..., Tn) -> Tr, $id, μ$id.T). t must already be
// free of live (unclosed) cycles: call package closure's Close first
// on any term that came straight out of Unify, since a Var bound
// directly to a term containing it would otherwise send String into
// an infinite recursion. Closed terms only ever cycle through a Rec
// node, which render guards against via seen.
func (t *Term) String() string {
	return t.render(make(map[int64]bool))
}

func (t *Term) render(seen map[int64]bool) string {
	t = Find(t)
	switch t.Kind {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindPtr:
		return "↑" + t.Elem.render(seen)
	case KindFun:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.render(seen)
		}
		return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.Ret.render(seen))
	case KindVar:
		return "$" + varLabel(t.id)
	case KindRec:
		if seen[t.id] {
			return "$" + varLabel(t.id)
		}
		seen[t.id] = true
		return fmt.Sprintf("μ%s.%s", "$"+varLabel(t.id), t.Body.render(seen))
	}
	return "?"
}

func varLabel(id int64) string {
	if config.IsTestMode {
		return "?"
	}
	return fmt.Sprintf("%d", id)
}

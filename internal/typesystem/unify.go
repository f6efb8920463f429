package typesystem

import (
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/token"
)

// Unify merges t1 and t2's equivalence classes in place.
// Unlike a substitution-based unifier there is no occurs check: if t1
// and t2 would only be equal by unifying a Var with a term that
// contains it, Unify happily creates that cycle. The closure pass
// (package closure) is what later turns a surviving cycle into a
// well-formed Rec type; Unify's only job is structural agreement.
func Unify(t1, t2 *Term, tok token.Token) error {
	r1, r2 := Find(t1), Find(t2)
	if r1 == r2 {
		return nil
	}

	if r1.Kind == KindVar {
		union(r1, r2)
		return nil
	}
	if r2.Kind == KindVar {
		union(r2, r1)
		return nil
	}

	if r1.Kind != r2.Kind {
		return diagnostics.NewTypeError(tok, r1.String(), r2.String())
	}

	switch r1.Kind {
	case KindInt, KindString:
		// Same Kind, no substructure: already structurally equal.
		union(r1, r2)
		return nil
	case KindPtr:
		if err := Unify(r1.Elem, r2.Elem, tok); err != nil {
			return err
		}
		union(r1, r2)
		return nil
	case KindFun:
		if len(r1.Params) != len(r2.Params) {
			return diagnostics.NewTypeError(tok, r1.String(), r2.String())
		}
		for i := range r1.Params {
			if err := Unify(r1.Params[i], r2.Params[i], tok); err != nil {
				return err
			}
		}
		if err := Unify(r1.Ret, r2.Ret, tok); err != nil {
			return err
		}
		union(r1, r2)
		return nil
	}

	return diagnostics.NewTypeError(tok, r1.String(), r2.String())
}

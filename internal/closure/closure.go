// Package closure turns the possibly-cyclic term graph Unify leaves
// behind into finite terms with explicit μ binders.
// Unify never performs an occurs check, so a solved Var can be bound
// (directly or through several Ptr/Fun layers) to a term that contains
// itself; Close walks that graph once and materializes each cycle it
// finds as a Rec(Var, T) node, so the rest of the pipeline (rendering,
// the result facade) only ever has to deal with finite trees.
package closure

import "github.com/funvibe/funxy/internal/typesystem"

// Close returns a finite term equivalent to t. Calling Close on an
// already-closed term is a no-op: Close is idempotent, so a result
// facade can call it unconditionally without tracking whether a term
// has been through it before.
func Close(t *typesystem.Term) *typesystem.Term {
	c := &closer{
		onPath:  make(map[*typesystem.Term]bool),
		done:    make(map[*typesystem.Term]*typesystem.Term),
		anchors: make(map[*typesystem.Term]*typesystem.Term),
	}
	return c.close(t)
}

type closer struct {
	onPath  map[*typesystem.Term]bool            // roots currently being closed, on the recursion stack
	done    map[*typesystem.Term]*typesystem.Term // root -> finished (possibly Rec) result
	anchors map[*typesystem.Term]*typesystem.Term // root -> the Var used to close a cycle through it
}

func (c *closer) close(t *typesystem.Term) *typesystem.Term {
	root := typesystem.Find(t)

	if result, ok := c.done[root]; ok {
		return result
	}

	if c.onPath[root] {
		// Found a cycle back to an ancestor. If the ancestor is
		// itself a Var, that Var is the anchor; otherwise allocate a
		// fresh anchor Var for it and remember it so the ancestor's own
		// close() call can wrap its result in Rec(anchor, ...).
		if root.Kind == typesystem.KindVar {
			return root
		}
		if anchor, ok := c.anchors[root]; ok {
			return anchor
		}
		anchor := typesystem.NewVar()
		c.anchors[root] = anchor
		return anchor
	}

	c.onPath[root] = true
	defer delete(c.onPath, root)

	var result *typesystem.Term
	switch root.Kind {
	case typesystem.KindVar, typesystem.KindInt, typesystem.KindString:
		result = root
	case typesystem.KindPtr:
		result = typesystem.Ptr(c.close(root.Elem))
	case typesystem.KindFun:
		params := make([]*typesystem.Term, len(root.Params))
		for i, p := range root.Params {
			params[i] = c.close(p)
		}
		result = typesystem.Fun(params, c.close(root.Ret))
	case typesystem.KindRec:
		// Already closed upstream (e.g. a subterm shared with a
		// previously-closed result); nothing more to do.
		result = root
	default:
		result = root
	}

	if anchor, ok := c.anchors[root]; ok {
		result = typesystem.Rec(anchor, result)
	}

	c.done[root] = result
	return result
}

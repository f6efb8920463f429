package analyzer

import (
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/token"
	"github.com/funvibe/funxy/internal/typesystem"
)

// Constraint is an Equal(left, right) obligation emitted while walking
// an expression or statement. Tok is the constraint site's
// token, used only to locate a TypeError if solving this constraint
// fails. Node is the expression or statement the constraint was
// derived from, rendered into the TypeError's Snippet if unifying
// Left and Right fails.
type Constraint struct {
	Left  *typesystem.Term
	Right *typesystem.Term
	Tok   token.Token
	Node  ast.Node
}

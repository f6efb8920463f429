package analyzer

import (
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/symbols"
	"github.com/funvibe/funxy/internal/token"
	"github.com/funvibe/funxy/internal/typesystem"
)

// generator walks a program emitting one Equal constraint per typing
// rule as it visits each node. It embeds ast.BaseVisitor so it only
// has to override the node kinds that carry a typing rule; everything
// else falls through to the default source-order traversal.
type generator struct {
	ast.BaseVisitor

	symtab *symbols.Table

	nodeVars    map[ast.NodeID]*typesystem.Term
	nodes       map[ast.NodeID]ast.Expression
	constraints []Constraint
}

func newGenerator(symtab *symbols.Table) *generator {
	g := &generator{
		symtab:   symtab,
		nodeVars: make(map[ast.NodeID]*typesystem.Term),
		nodes:    make(map[ast.NodeID]ast.Expression),
	}
	g.BaseVisitor.Self = g
	return g
}

// termFor returns e's Var, allocating a fresh one at first mention and
// memoizing it by e's stable identity.
func (g *generator) termFor(e ast.Expression) *typesystem.Term {
	if t, ok := g.nodeVars[e.ID()]; ok {
		return t
	}
	t := typesystem.NewVar()
	g.nodeVars[e.ID()] = t
	g.nodes[e.ID()] = e
	return t
}

func (g *generator) equal(a, b *typesystem.Term, tok token.Token, node ast.Node) {
	g.constraints = append(g.constraints, Constraint{Left: a, Right: b, Tok: tok, Node: node})
}

func (g *generator) VisitIdentifier(i *ast.Identifier) {
	// A binding-site Identifier (parameter, var-decl name, function
	// name) never appears in the symbol table's use->binding map; only
	// genuine uses do. Its own typing comes from whatever
	// construct declares it.
	if binding, ok := g.symtab.Binding(i); ok {
		g.equal(g.termFor(i), g.termFor(binding), i.Token, i)
	}
}

func (g *generator) VisitIntegerLiteral(l *ast.IntegerLiteral) {
	g.equal(g.termFor(l), typesystem.Int(), l.Token, l)
}

func (g *generator) VisitBooleanLiteral(l *ast.BooleanLiteral) {
	g.equal(g.termFor(l), typesystem.Int(), l.Token, l)
}

func (g *generator) VisitNullLiteral(l *ast.NullLiteral) {
	g.equal(g.termFor(l), typesystem.Ptr(typesystem.NewVar()), l.Token, l)
}

func (g *generator) VisitStringLiteral(l *ast.StringLiteral) {
	g.equal(g.termFor(l), typesystem.String(), l.Token, l)
}

func (g *generator) VisitInputExpression(e *ast.InputExpression) {
	g.equal(g.termFor(e), typesystem.Int(), e.Token, e)
}

func (g *generator) VisitInfixExpression(e *ast.InfixExpression) {
	result := g.termFor(e)
	left := g.termFor(e.Left)
	right := g.termFor(e.Right)

	if e.Operator == "==" {
		g.equal(left, right, e.Token, e)
	} else {
		g.equal(left, typesystem.Int(), e.Token, e.Left)
		g.equal(right, typesystem.Int(), e.Token, e.Right)
	}
	g.equal(result, typesystem.Int(), e.Token, e)

	g.BaseVisitor.VisitInfixExpression(e)
}

// VisitPrefixExpression covers TIP's unary operators: treated like a
// binary operator other than `==`, since the only unary operator TIP's
// grammar admits (numeric negation) is int-to-int.
func (g *generator) VisitPrefixExpression(e *ast.PrefixExpression) {
	g.equal(g.termFor(e.Right), typesystem.Int(), e.Token, e.Right)
	g.equal(g.termFor(e), typesystem.Int(), e.Token, e)

	g.BaseVisitor.VisitPrefixExpression(e)
}

func (g *generator) VisitAddressOfExpression(e *ast.AddressOfExpression) {
	g.equal(g.termFor(e), typesystem.Ptr(g.termFor(e.Target)), e.Token, e)

	g.BaseVisitor.VisitAddressOfExpression(e)
}

func (g *generator) VisitDerefExpression(e *ast.DerefExpression) {
	g.equal(typesystem.Ptr(g.termFor(e)), g.termFor(e.Target), e.Token, e)

	g.BaseVisitor.VisitDerefExpression(e)
}

func (g *generator) VisitAllocExpression(e *ast.AllocExpression) {
	g.equal(g.termFor(e), typesystem.Ptr(g.termFor(e.Value)), e.Token, e)

	g.BaseVisitor.VisitAllocExpression(e)
}

func (g *generator) VisitCallExpression(e *ast.CallExpression) {
	args := make([]*typesystem.Term, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = g.termFor(a)
	}
	g.equal(g.termFor(e.Function), typesystem.Fun(args, g.termFor(e)), e.Token, e)

	g.BaseVisitor.VisitCallExpression(e)
}

// VisitRecordLiteral and VisitFieldAccessExpression allocate a Var for
// the node so it participates in the result facade, but emit no
// equations: records are represented, not constrained, beyond their
// own expression-level Var.
func (g *generator) VisitRecordLiteral(e *ast.RecordLiteral) {
	g.termFor(e)

	g.BaseVisitor.VisitRecordLiteral(e)
}

func (g *generator) VisitFieldAccessExpression(e *ast.FieldAccessExpression) {
	g.termFor(e)

	g.BaseVisitor.VisitFieldAccessExpression(e)
}

func (g *generator) VisitVarDeclStatement(s *ast.VarDeclStatement) {
	for _, name := range s.Names {
		g.termFor(name)
	}
	g.BaseVisitor.VisitVarDeclStatement(s)
}

func (g *generator) VisitAssignStatement(s *ast.AssignStatement) {
	value := g.termFor(s.Value)

	switch target := s.Target.(type) {
	case *ast.Identifier:
		g.equal(g.termFor(target), value, s.Token, s)
	case *ast.DerefWrite:
		g.equal(typesystem.Ptr(value), g.termFor(target.Target), s.Token, s)
	case *ast.DirectFieldWrite, *ast.IndirectFieldWrite:
		// Record fields carry no type rule; see VisitRecordLiteral.
	}

	g.BaseVisitor.VisitAssignStatement(s)
}

func (g *generator) VisitIfStatement(s *ast.IfStatement) {
	g.equal(g.termFor(s.Condition), typesystem.Int(), s.Token, s)

	g.BaseVisitor.VisitIfStatement(s)
}

func (g *generator) VisitWhileStatement(s *ast.WhileStatement) {
	g.equal(g.termFor(s.Condition), typesystem.Int(), s.Token, s)

	g.BaseVisitor.VisitWhileStatement(s)
}

func (g *generator) VisitOutputStatement(s *ast.OutputStatement) {
	g.equal(g.termFor(s.Value), typesystem.Int(), s.Token, s)

	g.BaseVisitor.VisitOutputStatement(s)
}

func (g *generator) VisitFunctionStatement(f *ast.FunctionStatement) {
	params := make([]*typesystem.Term, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = g.termFor(p)
	}

	var ret *typesystem.Term
	var retStmt ast.Node
	if f.Body.Return != nil {
		ret = g.termFor(f.Body.Return.Value)
		retStmt = f.Body.Return
	} else {
		ret = typesystem.NewVar()
	}

	g.equal(g.termFor(f.Name), typesystem.Fun(params, ret), f.Token, f)

	if f.Name.Value == "main" {
		g.equal(ret, typesystem.Int(), f.Token, retStmt)
	}

	g.BaseVisitor.VisitFunctionStatement(f)
}

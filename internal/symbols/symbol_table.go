// Package symbols resolves every identifier use to its binding
// declaration under TIP's lexical scoping rules: functions
// are visible program-wide; parameters and local declarations are
// visible within the enclosing function body.
package symbols

import (
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/prettyprinter"
)

// Table maps every identifier use node to the binding node (a
// declaration, parameter, or function name) it resolves to. Each name
// carries a stack of bindings; entering a nested scope pushes, leaving
// it pops, so an inner `var x` shadows an outer one only for the
// statements between its declaration and the end of its block.
type Table struct {
	bindings map[*ast.Identifier]*ast.Identifier
	stacks   map[string][]*ast.Identifier
}

func newTable() *Table {
	return &Table{
		bindings: make(map[*ast.Identifier]*ast.Identifier),
		stacks:   make(map[string][]*ast.Identifier),
	}
}

func (t *Table) push(name string, binding *ast.Identifier) {
	t.stacks[name] = append(t.stacks[name], binding)
}

func (t *Table) top(name string) (*ast.Identifier, bool) {
	stack := t.stacks[name]
	if len(stack) == 0 {
		return nil, false
	}
	return stack[len(stack)-1], true
}

// Binding returns the binding node use resolves to, per Resolve.
func (t *Table) Binding(use *ast.Identifier) (*ast.Identifier, bool) {
	b, ok := t.bindings[use]
	return b, ok
}

// Resolve runs the resolver over prog and returns the completed table,
// or the first SymbolError encountered.
func Resolve(prog *ast.Program) (*Table, error) {
	r := &resolver{table: newTable()}

	// Pre-seed the outermost scope with all top-level function names:
	// functions are mutually visible.
	for _, fn := range prog.Functions {
		r.table.push(fn.Name.Value, fn.Name)
	}

	for _, fn := range prog.Functions {
		if err := r.resolveFunction(fn); err != nil {
			return nil, err
		}
	}
	return r.table, nil
}

// resolver walks the program with its own hand-rolled traversal rather
// than dispatching through ast.Visitor/Accept. Resolution needs two
// things the generic Visitor contract doesn't give it: an error return
// from every recursive step (so the first unbound use aborts the walk
// immediately, with no sticky-error field to check-and-clear at each
// call site) and precise control over when a scope's bindings are
// pushed relative to its sibling statements (an inner `var` shadows an
// outer binding starting at its declaration, not for the whole
// enclosing block, which BaseVisitor's uniform child-order traversal
// has no hook to express). Both constraint generation and
// prettyprinter share one walk shape on Visitor; this pass only
// borrows prettyprinter's output, via currentStmt, to render a snippet
// for unbound-identifier errors.
type resolver struct {
	table *Table

	// currentStmt is the statement currently being resolved, rendered
	// into NewSymbolError's Snippet when an identifier inside it fails
	// to resolve.
	currentStmt ast.Statement
}

// pushedScope tracks which names had a binding pushed in the current
// function scope, so leave can pop exactly those.
type pushedScope struct {
	names []string
}

func (r *resolver) resolveFunction(fn *ast.FunctionStatement) error {
	scope := &pushedScope{}
	for _, p := range fn.Parameters {
		r.table.push(p.Value, p)
		scope.names = append(scope.names, p.Value)
	}
	defer r.leave(scope)

	return r.resolveBlock(fn.Body, scope)
}

func (r *resolver) leave(scope *pushedScope) {
	for _, name := range scope.names {
		stack := r.table.stacks[name]
		r.table.stacks[name] = stack[:len(stack)-1]
	}
}

func (r *resolver) resolveBlock(b *ast.FunctionBlock, scope *pushedScope) error {
	for _, decl := range b.Declarations {
		for _, name := range decl.Names {
			r.table.push(name.Value, name)
			scope.names = append(scope.names, name.Value)
		}
	}
	for _, stmt := range b.Statements {
		if err := r.resolveStatement(stmt, scope); err != nil {
			return err
		}
	}
	if b.Return != nil {
		r.currentStmt = b.Return
		if err := r.resolveExpr(b.Return.Value); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveStatement(stmt ast.Statement, scope *pushedScope) error {
	r.currentStmt = stmt
	switch s := stmt.(type) {
	case *ast.VarDeclStatement:
		for _, name := range s.Names {
			r.table.push(name.Value, name)
			scope.names = append(scope.names, name.Value)
		}
		return nil
	case *ast.AssignStatement:
		if err := r.resolveAssignTarget(s.Target); err != nil {
			return err
		}
		return r.resolveExpr(s.Value)
	case *ast.IfStatement:
		if err := r.resolveExpr(s.Condition); err != nil {
			return err
		}
		if err := r.resolveNestedBlock(s.Consequence); err != nil {
			return err
		}
		if s.Alternative != nil {
			return r.resolveNestedBlock(s.Alternative)
		}
		return nil
	case *ast.WhileStatement:
		if err := r.resolveExpr(s.Condition); err != nil {
			return err
		}
		return r.resolveNestedBlock(s.Body)
	case *ast.OutputStatement:
		return r.resolveExpr(s.Value)
	case *ast.ReturnStatement:
		return r.resolveExpr(s.Value)
	case *ast.ExpressionStatement:
		return r.resolveExpr(s.Expression)
	case *ast.BlockStatement:
		return r.resolveNestedBlock(s)
	}
	return nil
}

// resolveNestedBlock resolves a plain block (if/while body), which may
// itself contain `var` declarations that shadow an outer scope's
// bindings. Those declarations are popped
// when the block ends, even though TIP's grammar nests them inside the
// same FunctionBlock rather than opening a brand-new scope kind.
func (r *resolver) resolveNestedBlock(b *ast.BlockStatement) error {
	nested := &pushedScope{}
	defer r.leave(nested)
	for _, stmt := range b.Statements {
		if decl, ok := stmt.(*ast.VarDeclStatement); ok {
			for _, name := range decl.Names {
				r.table.push(name.Value, name)
				nested.names = append(nested.names, name.Value)
			}
			continue
		}
		if err := r.resolveStatement(stmt, nested); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveAssignTarget(target ast.AssignTarget) error {
	switch t := target.(type) {
	case *ast.Identifier:
		return r.resolveExpr(t)
	case *ast.DirectFieldWrite:
		return r.resolveExpr(t.Base)
	case *ast.IndirectFieldWrite:
		return r.resolveExpr(t.Base)
	case *ast.DerefWrite:
		return r.resolveExpr(t.Target)
	}
	return nil
}

func (r *resolver) resolveExpr(expr ast.Expression) error {
	switch e := expr.(type) {
	case *ast.Identifier:
		binding, ok := r.table.top(e.Value)
		if !ok {
			err := diagnostics.NewSymbolError(e.Token, e.Value)
			if r.currentStmt != nil {
				err.Snippet = prettyprinter.PrintStatement(r.currentStmt)
			}
			return err
		}
		r.table.bindings[e] = binding
		return nil
	case *ast.IntegerLiteral, *ast.BooleanLiteral, *ast.NullLiteral, *ast.StringLiteral, *ast.InputExpression:
		return nil
	case *ast.InfixExpression:
		if err := r.resolveExpr(e.Left); err != nil {
			return err
		}
		return r.resolveExpr(e.Right)
	case *ast.PrefixExpression:
		return r.resolveExpr(e.Right)
	case *ast.AddressOfExpression:
		return r.resolveExpr(e.Target)
	case *ast.DerefExpression:
		return r.resolveExpr(e.Target)
	case *ast.AllocExpression:
		return r.resolveExpr(e.Value)
	case *ast.CallExpression:
		if err := r.resolveExpr(e.Function); err != nil {
			return err
		}
		for _, arg := range e.Arguments {
			if err := r.resolveExpr(arg); err != nil {
				return err
			}
		}
		return nil
	case *ast.RecordLiteral:
		// Field names are labels, not variable uses:
		// only the value subexpressions are resolved.
		for _, f := range e.Fields {
			if err := r.resolveExpr(f.Value); err != nil {
				return err
			}
		}
		return nil
	case *ast.FieldAccessExpression:
		return r.resolveExpr(e.Target)
	}
	return nil
}

package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/config"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/token"
)

func TestMain(m *testing.M) {
	config.IsTestMode = true
	m.Run()
}

func typeOf(t *testing.T, r *Result, e ast.Expression) string {
	t.Helper()
	term, ok := r.TypeOf(e)
	if !ok {
		t.Fatalf("no type recorded for node")
	}
	return term.String()
}

// Scenario 1: basic deref/alloc.
//
//	short() { var x, y, z; x = input; y = alloc x; *y = x; z = *y; return z; }
func TestBasicDerefAlloc(t *testing.T) {
	x, y, z := ident("x"), ident("y"), ident("z")
	body := funcBlock(
		[]*ast.VarDeclStatement{varDecl(x, y, z)},
		[]ast.Statement{
			assign(ident("x"), inputExpr()),
			assign(ident("y"), allocExpr(ident("x"))),
			assign(derefWrite(ident("y")), ident("x")),
			assign(ident("z"), derefExpr(ident("y"))),
		},
		ret(ident("z")),
	)
	f := fn("short", nil, body)
	prog := program(f)

	result, err := Analyze(prog)
	assert.NoError(t, err)

	assert.Equal(t, "int", typeOf(t, result, x))
	assert.Equal(t, "↑int", typeOf(t, result, y))
	assert.Equal(t, "int", typeOf(t, result, z))
	assert.Equal(t, "() -> int", typeOf(t, result, f.Name))
}

// Scenario 2: generic store.
//
//	store(a,b) { *b = a; return 0; }
func TestGenericStore(t *testing.T) {
	a, b := ident("a"), ident("b")
	body := funcBlock(nil,
		[]ast.Statement{assign(derefWrite(ident("b")), ident("a"))},
		ret(intLit(0)),
	)
	f := fn("store", []*ast.Identifier{a, b}, body)
	prog := program(f)

	result, err := Analyze(prog)
	assert.NoError(t, err)

	assert.Equal(t, "$?", typeOf(t, result, a))
	assert.Equal(t, "↑$?", typeOf(t, result, b))
	assert.Equal(t, "($?, ↑$?) -> int", typeOf(t, result, f.Name))
}

// Scenario 3: recursive pointer type.
//
//	main() { var p; p = alloc null; *p = p; return 0; }
func TestRecursivePointer(t *testing.T) {
	p := ident("p")
	body := funcBlock(
		[]*ast.VarDeclStatement{varDecl(p)},
		[]ast.Statement{
			assign(ident("p"), allocExpr(nullLit())),
			assign(derefWrite(ident("p")), ident("p")),
		},
		ret(intLit(0)),
	)
	f := fn("main", nil, body)
	prog := program(f)

	result, err := Analyze(prog)
	assert.NoError(t, err)

	pType := typeOf(t, result, p)
	assert.Contains(t, pType, "μ")
	assert.Equal(t, "μ$?.↑$?", pType)
}

// Scenario 4: higher-order recursion.
//
//	foo(p,x) {
//	  var f,q;
//	  if (*q==0) { f=1; } else { q = alloc 0; *q = (*p)-1; f = (*p)*(x(q,x)); }
//	  return f;
//	}
//	main() { var n; n = input; return foo(&n, foo); }
func TestHigherOrderRecursion(t *testing.T) {
	p, x := ident("p"), ident("x")
	f, q := ident("f"), ident("q")

	cond := infix(derefExpr(ident("q")), "==", intLit(0))
	thenBlock := block(assign(ident("f"), intLit(1)))
	elseBlock := block(
		assign(ident("q"), allocExpr(intLit(0))),
		assign(derefWrite(ident("q")), infix(derefExpr(ident("p")), "-", intLit(1))),
		assign(ident("f"), infix(derefExpr(ident("p")), "*", call(ident("x"), ident("q"), ident("x")))),
	)
	fooBody := funcBlock(
		[]*ast.VarDeclStatement{varDecl(f, q)},
		[]ast.Statement{ifStmt(cond, thenBlock, elseBlock)},
		ret(ident("f")),
	)
	fooFn := fn("foo", []*ast.Identifier{p, x}, fooBody)

	n := ident("n")
	mainBody := funcBlock(
		[]*ast.VarDeclStatement{varDecl(n)},
		[]ast.Statement{assign(ident("n"), inputExpr())},
		ret(call(ident("foo"), addr(ident("n")), ident("foo"))),
	)
	mainFn := fn("main", nil, mainBody)

	prog := program(fooFn, mainFn)

	result, err := Analyze(prog)
	assert.NoError(t, err)

	assert.Equal(t, "↑int", typeOf(t, result, p))
	assert.Equal(t, "↑int", typeOf(t, result, q))

	fooType := typeOf(t, result, fooFn.Name)
	xType := typeOf(t, result, x)
	assert.Equal(t, fooType, xType)
	assert.Contains(t, xType, "μ")
	assert.Contains(t, xType, "->")
}

// Scenario 5: int vs pointer mismatch is rejected.
//
//	main() { var x,y; x = input; y = alloc x; x = x + y; return 0; }
func TestIntPointerMismatchRejected(t *testing.T) {
	x, y := ident("x"), ident("y")
	body := funcBlock(
		[]*ast.VarDeclStatement{varDecl(x, y)},
		[]ast.Statement{
			assign(ident("x"), inputExpr()),
			assign(ident("y"), allocExpr(ident("x"))),
			assign(ident("x"), infix(ident("x"), "+", ident("y"))),
		},
		ret(intLit(0)),
	)
	f := fn("main", nil, body)
	prog := program(f)

	_, err := Analyze(prog)
	assert.Error(t, err)

	var diagErr *diagnostics.DiagnosticError
	assert.ErrorAs(t, err, &diagErr)
	assert.Equal(t, diagnostics.ErrType, diagErr.Code)
	assert.Contains(t, diagErr.Snippet, "y")
}

// Scenario 6: string propagates through a pointer.
//
//	foo(p) { var q; q = "hello"; *p = q; return 0; }
func TestStringThroughPointer(t *testing.T) {
	p, q := ident("p"), ident("q")
	body := funcBlock(
		[]*ast.VarDeclStatement{varDecl(q)},
		[]ast.Statement{
			assign(ident("q"), strLit("hello")),
			assign(derefWrite(ident("p")), ident("q")),
		},
		ret(intLit(0)),
	)
	f := fn("foo", []*ast.Identifier{p}, body)
	prog := program(f)

	result, err := Analyze(prog)
	assert.NoError(t, err)

	assert.Equal(t, "string", typeOf(t, result, q))
	assert.Equal(t, "↑string", typeOf(t, result, p))
}

// Scenario 7: record construction and access carry no type rule of
// their own; the access is only constrained because it is main's return.
//
//	main() { var r; r = {f: 1, g: 2}; return r.f; }
func TestRecordFieldsUnconstrained(t *testing.T) {
	r := ident("r")
	rec := ast.NewRecordLiteral(tok(token.LBRACE, "{"), []ast.RecordField{
		{Name: "f", Value: intLit(1)},
		{Name: "g", Value: intLit(2)},
	})
	access := ast.NewFieldAccessExpression(tok(token.DOT, "."), ident("r"), []string{"f"})

	body := funcBlock(
		[]*ast.VarDeclStatement{varDecl(r)},
		[]ast.Statement{assign(ident("r"), rec)},
		ret(access),
	)
	f := fn("main", nil, body)
	prog := program(f)

	result, err := Analyze(prog)
	assert.NoError(t, err)

	// The literal is just its own fresh Var: no int/string constraint
	// ever touches it. The access gets int only from the rule that
	// main's return value is an int, not from any record rule.
	assert.True(t, strings.HasPrefix(typeOf(t, result, rec), "$"))
	assert.Equal(t, "int", typeOf(t, result, access))
}

// Scenario 8: shadowing across nested scopes.
//
//	main() { var x; x = 1; if (x > 0) { var x; x = alloc 1; } return x; }
func TestShadowingAcrossNestedScopes(t *testing.T) {
	outerDecl := ident("x")
	innerDecl := ident("x")

	innerBlock := block(
		varDecl(innerDecl),
		assign(ident("x"), allocExpr(intLit(1))),
	)
	body := funcBlock(
		[]*ast.VarDeclStatement{varDecl(outerDecl)},
		[]ast.Statement{
			assign(ident("x"), intLit(1)),
			ifStmt(infix(ident("x"), ">", intLit(0)), innerBlock, nil),
		},
		ret(ident("x")),
	)
	f := fn("main", nil, body)
	prog := program(f)

	result, err := Analyze(prog)
	assert.NoError(t, err)

	assert.Equal(t, "int", typeOf(t, result, outerDecl))
	assert.Equal(t, "↑int", typeOf(t, result, innerDecl))
}

// Scenario 9: an unbound identifier fails symbol resolution.
//
//	main() { return y; }
func TestUnboundIdentifierRejected(t *testing.T) {
	body := funcBlock(nil, nil, ret(ident("y")))
	f := fn("main", nil, body)
	prog := program(f)

	_, err := Analyze(prog)
	assert.Error(t, err)

	var diagErr *diagnostics.DiagnosticError
	assert.ErrorAs(t, err, &diagErr)
	assert.Equal(t, diagnostics.ErrSymbol, diagErr.Code)
	assert.Contains(t, diagErr.Error(), "y")
	assert.Contains(t, diagErr.Snippet, "return y")
}

// Scenario 10: calling a function with too few arguments is a
// TypeError, not a SymbolError.
//
//	add(a,b) { return a+b; } main() { return add(1); }
func TestArityMismatchRejected(t *testing.T) {
	a, b := ident("a"), ident("b")
	addBody := funcBlock(nil, nil, ret(infix(ident("a"), "+", ident("b"))))
	addFn := fn("add", []*ast.Identifier{a, b}, addBody)

	mainBody := funcBlock(nil, nil, ret(call(ident("add"), intLit(1))))
	mainFn := fn("main", nil, mainBody)

	prog := program(addFn, mainFn)

	_, err := Analyze(prog)
	assert.Error(t, err)

	var diagErr *diagnostics.DiagnosticError
	assert.ErrorAs(t, err, &diagErr)
	assert.Equal(t, diagnostics.ErrType, diagErr.Code)
}

package analyzer

// Helpers for building TIP programs by hand. No parser exists in this
// repo, so every test program is assembled directly from the ast
// constructors, one call per surface-syntax construct.

import (
	"fmt"

	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/token"
)

func tok(typ token.Type, lexeme string) token.Token {
	return token.Token{Type: typ, Lexeme: lexeme, Line: 1, Column: 1}
}

func ident(name string) *ast.Identifier {
	return ast.NewIdentifier(tok(token.IDENT, name), name)
}

func intLit(v int64) *ast.IntegerLiteral {
	return ast.NewIntegerLiteral(tok(token.INT, fmt.Sprint(v)), v)
}

func strLit(v string) *ast.StringLiteral {
	return ast.NewStringLiteral(tok(token.STRING, v), v)
}

func nullLit() *ast.NullLiteral {
	return ast.NewNullLiteral(tok(token.NULL, "null"))
}

func inputExpr() *ast.InputExpression {
	return ast.NewInputExpression(tok(token.INPUT, "input"))
}

func infix(left ast.Expression, op string, right ast.Expression) *ast.InfixExpression {
	return ast.NewInfixExpression(tok(token.Type(op), op), left, op, right)
}

func derefExpr(e ast.Expression) *ast.DerefExpression {
	return ast.NewDerefExpression(tok(token.ASTERISK, "*"), e)
}

func addr(i *ast.Identifier) *ast.AddressOfExpression {
	return ast.NewAddressOfExpression(tok(token.AMP, "&"), i)
}

func allocExpr(e ast.Expression) *ast.AllocExpression {
	return ast.NewAllocExpression(tok(token.ALLOC, "alloc"), e)
}

func call(fn ast.Expression, args ...ast.Expression) *ast.CallExpression {
	return ast.NewCallExpression(tok(token.LPAREN, "("), fn, args)
}

func varDecl(names ...*ast.Identifier) *ast.VarDeclStatement {
	return &ast.VarDeclStatement{Token: tok(token.VAR, "var"), Names: names}
}

func assign(target ast.AssignTarget, value ast.Expression) *ast.AssignStatement {
	return &ast.AssignStatement{Token: tok(token.ASSIGN, "="), Target: target, Value: value}
}

func derefWrite(target ast.Expression) *ast.DerefWrite {
	return &ast.DerefWrite{Token: tok(token.ASTERISK, "*"), Target: target}
}

func output(e ast.Expression) *ast.OutputStatement {
	return &ast.OutputStatement{Token: tok(token.OUTPUT, "output"), Value: e}
}

func ret(e ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{Token: tok(token.RETURN, "return"), Value: e}
}

func block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Token: tok(token.LBRACE, "{"), Statements: stmts}
}

func ifStmt(cond ast.Expression, cons, alt *ast.BlockStatement) *ast.IfStatement {
	return &ast.IfStatement{Token: tok(token.IF, "if"), Condition: cond, Consequence: cons, Alternative: alt}
}

func funcBlock(decls []*ast.VarDeclStatement, stmts []ast.Statement, r *ast.ReturnStatement) *ast.FunctionBlock {
	return &ast.FunctionBlock{Token: tok(token.LBRACE, "{"), Declarations: decls, Statements: stmts, Return: r}
}

func fn(name string, params []*ast.Identifier, body *ast.FunctionBlock) *ast.FunctionStatement {
	return &ast.FunctionStatement{Token: tok(token.IDENT, name), Name: ident(name), Parameters: params, Body: body}
}

func program(fns ...*ast.FunctionStatement) *ast.Program {
	return &ast.Program{Functions: fns}
}

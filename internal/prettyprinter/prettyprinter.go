// Package prettyprinter renders an AST back to TIP surface syntax, for
// diagnostic messages and test failure output only: nothing in the
// inference pipeline depends on it.
package prettyprinter

import (
	"fmt"
	"strings"

	"github.com/funvibe/funxy/internal/ast"
)

// Print renders e as TIP source text.
func Print(e ast.Expression) string {
	p := &printer{}
	e.Accept(p)
	return p.buf.String()
}

// PrintStatement renders a single statement.
func PrintStatement(s ast.Statement) string {
	p := &printer{}
	s.Accept(p)
	return p.buf.String()
}

// PrintProgram renders an entire program.
func PrintProgram(prog *ast.Program) string {
	p := &printer{}
	prog.Accept(p)
	return p.buf.String()
}

type printer struct {
	ast.BaseVisitor
	buf    strings.Builder
	indent int
}

func (p *printer) writeIndent() {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
}

func (p *printer) VisitProgram(prog *ast.Program) {
	for i, fn := range prog.Functions {
		if i > 0 {
			p.buf.WriteString("\n\n")
		}
		fn.Accept(p)
	}
}

func (p *printer) VisitIdentifier(i *ast.Identifier) { p.buf.WriteString(i.Value) }

func (p *printer) VisitIntegerLiteral(l *ast.IntegerLiteral) {
	fmt.Fprintf(&p.buf, "%d", l.Value)
}

func (p *printer) VisitBooleanLiteral(l *ast.BooleanLiteral) {
	if l.Value {
		p.buf.WriteString("true")
	} else {
		p.buf.WriteString("false")
	}
}

func (p *printer) VisitNullLiteral(l *ast.NullLiteral) { p.buf.WriteString("null") }

func (p *printer) VisitStringLiteral(l *ast.StringLiteral) {
	fmt.Fprintf(&p.buf, "%q", l.Value)
}

func (p *printer) VisitInputExpression(e *ast.InputExpression) { p.buf.WriteString("input") }

func (p *printer) VisitInfixExpression(e *ast.InfixExpression) {
	e.Left.Accept(p)
	fmt.Fprintf(&p.buf, " %s ", e.Operator)
	e.Right.Accept(p)
}

func (p *printer) VisitPrefixExpression(e *ast.PrefixExpression) {
	p.buf.WriteString(e.Operator)
	e.Right.Accept(p)
}

func (p *printer) VisitAddressOfExpression(e *ast.AddressOfExpression) {
	p.buf.WriteString("&")
	e.Target.Accept(p)
}

func (p *printer) VisitDerefExpression(e *ast.DerefExpression) {
	p.buf.WriteString("*")
	e.Target.Accept(p)
}

func (p *printer) VisitAllocExpression(e *ast.AllocExpression) {
	p.buf.WriteString("alloc ")
	e.Value.Accept(p)
}

func (p *printer) VisitCallExpression(e *ast.CallExpression) {
	e.Function.Accept(p)
	p.buf.WriteString("(")
	for i, arg := range e.Arguments {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		arg.Accept(p)
	}
	p.buf.WriteString(")")
}

func (p *printer) VisitRecordLiteral(e *ast.RecordLiteral) {
	p.buf.WriteString("{")
	for i, f := range e.Fields {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		fmt.Fprintf(&p.buf, "%s: ", f.Name)
		f.Value.Accept(p)
	}
	p.buf.WriteString("}")
}

func (p *printer) VisitFieldAccessExpression(e *ast.FieldAccessExpression) {
	e.Target.Accept(p)
	for _, f := range e.Fields {
		fmt.Fprintf(&p.buf, ".%s", f)
	}
}

func (p *printer) VisitDirectFieldWrite(w *ast.DirectFieldWrite) {
	w.Base.Accept(p)
	fmt.Fprintf(&p.buf, ".%s", w.Field)
}

func (p *printer) VisitIndirectFieldWrite(w *ast.IndirectFieldWrite) {
	p.buf.WriteString("(*")
	w.Base.Accept(p)
	fmt.Fprintf(&p.buf, ").%s", w.Field)
}

func (p *printer) VisitDerefWrite(w *ast.DerefWrite) {
	p.buf.WriteString("*")
	w.Target.Accept(p)
}

func (p *printer) VisitVarDeclStatement(s *ast.VarDeclStatement) {
	p.writeIndent()
	p.buf.WriteString("var ")
	for i, name := range s.Names {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		name.Accept(p)
	}
	p.buf.WriteString(";\n")
}

func (p *printer) VisitAssignStatement(s *ast.AssignStatement) {
	p.writeIndent()
	s.Target.Accept(p)
	p.buf.WriteString(" = ")
	s.Value.Accept(p)
	p.buf.WriteString(";\n")
}

func (p *printer) VisitIfStatement(s *ast.IfStatement) {
	p.writeIndent()
	p.buf.WriteString("if (")
	s.Condition.Accept(p)
	p.buf.WriteString(") ")
	p.printInlineBlock(s.Consequence)
	if s.Alternative != nil {
		p.buf.WriteString(" else ")
		p.printInlineBlock(s.Alternative)
	}
	p.buf.WriteString("\n")
}

func (p *printer) VisitWhileStatement(s *ast.WhileStatement) {
	p.writeIndent()
	p.buf.WriteString("while (")
	s.Condition.Accept(p)
	p.buf.WriteString(") ")
	p.printInlineBlock(s.Body)
	p.buf.WriteString("\n")
}

func (p *printer) printInlineBlock(b *ast.BlockStatement) {
	p.buf.WriteString("{\n")
	p.indent++
	for _, stmt := range b.Statements {
		stmt.Accept(p)
	}
	p.indent--
	p.writeIndent()
	p.buf.WriteString("}")
}

func (p *printer) VisitOutputStatement(s *ast.OutputStatement) {
	p.writeIndent()
	p.buf.WriteString("output ")
	s.Value.Accept(p)
	p.buf.WriteString(";\n")
}

func (p *printer) VisitReturnStatement(s *ast.ReturnStatement) {
	p.writeIndent()
	p.buf.WriteString("return ")
	s.Value.Accept(p)
	p.buf.WriteString(";\n")
}

func (p *printer) VisitExpressionStatement(s *ast.ExpressionStatement) {
	p.writeIndent()
	s.Expression.Accept(p)
	p.buf.WriteString(";\n")
}

func (p *printer) VisitBlockStatement(s *ast.BlockStatement) {
	p.buf.WriteString("{\n")
	p.indent++
	for _, stmt := range s.Statements {
		stmt.Accept(p)
	}
	p.indent--
	p.writeIndent()
	p.buf.WriteString("}")
}

func (p *printer) VisitFunctionBlock(b *ast.FunctionBlock) {
	p.buf.WriteString("{\n")
	p.indent++
	for _, decl := range b.Declarations {
		decl.Accept(p)
	}
	for _, stmt := range b.Statements {
		stmt.Accept(p)
	}
	if b.Return != nil {
		b.Return.Accept(p)
	}
	p.indent--
	p.writeIndent()
	p.buf.WriteString("}")
}

func (p *printer) VisitFunctionStatement(f *ast.FunctionStatement) {
	f.Name.Accept(p)
	p.buf.WriteString("(")
	for i, param := range f.Parameters {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		param.Accept(p)
	}
	p.buf.WriteString(") ")
	f.Body.Accept(p)
}

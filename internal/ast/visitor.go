package ast

// Visitor is the single entry point every pass dispatches through
//. Each node's Accept calls the matching Visit method; the
// default BaseVisitor recurses into children in source order so the
// constraint generator and the pretty-printer can embed it and override
// only the handlers they care about. The symbol resolver uses its own
// traversal instead.
type Visitor interface {
	VisitProgram(p *Program)

	VisitIdentifier(i *Identifier)
	VisitIntegerLiteral(l *IntegerLiteral)
	VisitBooleanLiteral(l *BooleanLiteral)
	VisitNullLiteral(l *NullLiteral)
	VisitStringLiteral(l *StringLiteral)
	VisitInputExpression(e *InputExpression)
	VisitInfixExpression(e *InfixExpression)
	VisitPrefixExpression(e *PrefixExpression)
	VisitAddressOfExpression(e *AddressOfExpression)
	VisitDerefExpression(e *DerefExpression)
	VisitAllocExpression(e *AllocExpression)
	VisitCallExpression(e *CallExpression)
	VisitRecordLiteral(e *RecordLiteral)
	VisitFieldAccessExpression(e *FieldAccessExpression)

	VisitDirectFieldWrite(w *DirectFieldWrite)
	VisitIndirectFieldWrite(w *IndirectFieldWrite)
	VisitDerefWrite(w *DerefWrite)

	VisitVarDeclStatement(s *VarDeclStatement)
	VisitAssignStatement(s *AssignStatement)
	VisitIfStatement(s *IfStatement)
	VisitWhileStatement(s *WhileStatement)
	VisitOutputStatement(s *OutputStatement)
	VisitReturnStatement(s *ReturnStatement)
	VisitExpressionStatement(s *ExpressionStatement)
	VisitBlockStatement(s *BlockStatement)
	VisitFunctionBlock(b *FunctionBlock)
	VisitFunctionStatement(f *FunctionStatement)
}

// BaseVisitor implements Visitor with a pure source-order traversal and
// no other effect. Embed it and override individual Visit methods to
// get "recurse into everything except what I care about" for free.
type BaseVisitor struct {
	Self Visitor // the outermost visitor; if nil, BaseVisitor recurses into itself
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) VisitProgram(p *Program) {
	for _, fn := range p.Functions {
		fn.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitIdentifier(i *Identifier)           {}
func (b *BaseVisitor) VisitIntegerLiteral(l *IntegerLiteral)   {}
func (b *BaseVisitor) VisitBooleanLiteral(l *BooleanLiteral)   {}
func (b *BaseVisitor) VisitNullLiteral(l *NullLiteral)         {}
func (b *BaseVisitor) VisitStringLiteral(l *StringLiteral)     {}
func (b *BaseVisitor) VisitInputExpression(e *InputExpression) {}

func (b *BaseVisitor) VisitInfixExpression(e *InfixExpression) {
	e.Left.Accept(b.self())
	e.Right.Accept(b.self())
}

func (b *BaseVisitor) VisitPrefixExpression(e *PrefixExpression) {
	e.Right.Accept(b.self())
}

func (b *BaseVisitor) VisitAddressOfExpression(e *AddressOfExpression) {
	e.Target.Accept(b.self())
}

func (b *BaseVisitor) VisitDerefExpression(e *DerefExpression) {
	e.Target.Accept(b.self())
}

func (b *BaseVisitor) VisitAllocExpression(e *AllocExpression) {
	e.Value.Accept(b.self())
}

func (b *BaseVisitor) VisitCallExpression(e *CallExpression) {
	e.Function.Accept(b.self())
	for _, arg := range e.Arguments {
		arg.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitRecordLiteral(e *RecordLiteral) {
	for _, f := range e.Fields {
		// Field names are labels, not variable uses; only
		// the value subexpression is visited.
		f.Value.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitFieldAccessExpression(e *FieldAccessExpression) {
	e.Target.Accept(b.self())
}

func (b *BaseVisitor) VisitDirectFieldWrite(w *DirectFieldWrite) {
	w.Base.Accept(b.self())
}

func (b *BaseVisitor) VisitIndirectFieldWrite(w *IndirectFieldWrite) {
	w.Base.Accept(b.self())
}

func (b *BaseVisitor) VisitDerefWrite(w *DerefWrite) {
	w.Target.Accept(b.self())
}

func (b *BaseVisitor) VisitVarDeclStatement(s *VarDeclStatement) {
	for _, name := range s.Names {
		name.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitAssignStatement(s *AssignStatement) {
	s.Target.Accept(b.self())
	s.Value.Accept(b.self())
}

func (b *BaseVisitor) VisitIfStatement(s *IfStatement) {
	s.Condition.Accept(b.self())
	s.Consequence.Accept(b.self())
	if s.Alternative != nil {
		s.Alternative.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitWhileStatement(s *WhileStatement) {
	s.Condition.Accept(b.self())
	s.Body.Accept(b.self())
}

func (b *BaseVisitor) VisitOutputStatement(s *OutputStatement) {
	s.Value.Accept(b.self())
}

func (b *BaseVisitor) VisitReturnStatement(s *ReturnStatement) {
	s.Value.Accept(b.self())
}

func (b *BaseVisitor) VisitExpressionStatement(s *ExpressionStatement) {
	s.Expression.Accept(b.self())
}

func (b *BaseVisitor) VisitBlockStatement(s *BlockStatement) {
	for _, stmt := range s.Statements {
		stmt.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitFunctionBlock(fb *FunctionBlock) {
	for _, decl := range fb.Declarations {
		decl.Accept(b.self())
	}
	for _, stmt := range fb.Statements {
		stmt.Accept(b.self())
	}
	if fb.Return != nil {
		fb.Return.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitFunctionStatement(f *FunctionStatement) {
	for _, p := range f.Parameters {
		p.Accept(b.self())
	}
	f.Body.Accept(b.self())
}

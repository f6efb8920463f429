package ast

import "github.com/funvibe/funxy/internal/token"

// AssignTarget is the left-hand side of an assignment: one of
// {identifier, direct field write `x.f`, indirect field write
// `(*e).f`, deref write `*e`}.
type AssignTarget interface {
	Node
	assignTargetNode()
	GetToken() token.Token
}

func (i *Identifier) assignTargetNode() {}

// DirectFieldWrite is `x.f = rhs`.
type DirectFieldWrite struct {
	Token token.Token // the '.' token
	Base  *Identifier
	Field string
}

func (w *DirectFieldWrite) Accept(v Visitor)      { v.VisitDirectFieldWrite(w) }
func (w *DirectFieldWrite) assignTargetNode()     {}
func (w *DirectFieldWrite) TokenLiteral() string  { return w.Token.Lexeme }
func (w *DirectFieldWrite) GetToken() token.Token { return w.Token }

// IndirectFieldWrite is `(*e).f = rhs`.
type IndirectFieldWrite struct {
	Token token.Token // the '.' token
	Base  Expression  // the `e` in `(*e)`
	Field string
}

func (w *IndirectFieldWrite) Accept(v Visitor)      { v.VisitIndirectFieldWrite(w) }
func (w *IndirectFieldWrite) assignTargetNode()     {}
func (w *IndirectFieldWrite) TokenLiteral() string  { return w.Token.Lexeme }
func (w *IndirectFieldWrite) GetToken() token.Token { return w.Token }

// DerefWrite is `*e = rhs`.
type DerefWrite struct {
	Token  token.Token // the '*' token
	Target Expression
}

func (w *DerefWrite) Accept(v Visitor)      { v.VisitDerefWrite(w) }
func (w *DerefWrite) assignTargetNode()     {}
func (w *DerefWrite) TokenLiteral() string  { return w.Token.Lexeme }
func (w *DerefWrite) GetToken() token.Token { return w.Token }

// VarDeclStatement declares a list of local names, e.g. `var x, y, z;`.
type VarDeclStatement struct {
	Token token.Token // the 'var' token
	Names []*Identifier
}

func (s *VarDeclStatement) Accept(v Visitor)      { v.VisitVarDeclStatement(s) }
func (s *VarDeclStatement) statementNode()        {}
func (s *VarDeclStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *VarDeclStatement) GetToken() token.Token { return s.Token }

// AssignStatement is `target = value`.
type AssignStatement struct {
	Token  token.Token // the '=' token
	Target AssignTarget
	Value  Expression
}

func (s *AssignStatement) Accept(v Visitor)      { v.VisitAssignStatement(s) }
func (s *AssignStatement) statementNode()        {}
func (s *AssignStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *AssignStatement) GetToken() token.Token { return s.Token }

// IfStatement is `if (cond) cons [else alt]`.
type IfStatement struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil when there is no else branch
}

func (s *IfStatement) Accept(v Visitor)      { v.VisitIfStatement(s) }
func (s *IfStatement) statementNode()        {}
func (s *IfStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *IfStatement) GetToken() token.Token { return s.Token }

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Token     token.Token // the 'while' token
	Condition Expression
	Body      *BlockStatement
}

func (s *WhileStatement) Accept(v Visitor)      { v.VisitWhileStatement(s) }
func (s *WhileStatement) statementNode()        {}
func (s *WhileStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *WhileStatement) GetToken() token.Token { return s.Token }

// OutputStatement is `output e`.
type OutputStatement struct {
	Token token.Token // the 'output' token
	Value Expression
}

func (s *OutputStatement) Accept(v Visitor)      { v.VisitOutputStatement(s) }
func (s *OutputStatement) statementNode()        {}
func (s *OutputStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *OutputStatement) GetToken() token.Token { return s.Token }

// ReturnStatement is `return e`.
type ReturnStatement struct {
	Token token.Token // the 'return' token
	Value Expression
}

func (s *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(s) }
func (s *ReturnStatement) statementNode()        {}
func (s *ReturnStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ReturnStatement) GetToken() token.Token { return s.Token }

// ExpressionStatement wraps a bare expression used as a statement
// (e.g. a call for side effect only).
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(s) }
func (s *ExpressionStatement) statementNode()        {}
func (s *ExpressionStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ExpressionStatement) GetToken() token.Token { return s.Token }

// BlockStatement is a `{ ... }` list of statements, used for if/while
// bodies (as opposed to a FunctionBlock, which additionally carries
// declarations and a required return).
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (s *BlockStatement) Accept(v Visitor)      { v.VisitBlockStatement(s) }
func (s *BlockStatement) statementNode()        {}
func (s *BlockStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *BlockStatement) GetToken() token.Token { return s.Token }

// FunctionBlock is a function's body: variable declarations, then
// statements, then a required return.
type FunctionBlock struct {
	Token        token.Token // the '{' token
	Declarations []*VarDeclStatement
	Statements   []Statement
	Return       *ReturnStatement
}

func (b *FunctionBlock) Accept(v Visitor)      { v.VisitFunctionBlock(b) }
func (b *FunctionBlock) statementNode()        {}
func (b *FunctionBlock) TokenLiteral() string  { return b.Token.Lexeme }
func (b *FunctionBlock) GetToken() token.Token { return b.Token }

// FunctionStatement is a top-level function definition: name,
// parameters, body.
type FunctionStatement struct {
	Token      token.Token // the function name's token
	Name       *Identifier
	Parameters []*Identifier
	Body       *FunctionBlock
}

func (f *FunctionStatement) Accept(v Visitor)      { v.VisitFunctionStatement(f) }
func (f *FunctionStatement) statementNode()        {}
func (f *FunctionStatement) TokenLiteral() string  { return f.Token.Lexeme }
func (f *FunctionStatement) GetToken() token.Token { return f.Token }

package ast

import "github.com/funvibe/funxy/internal/token"

// InfixExpression is a binary operator application: `+ − * /` and the
// relational set `== != < > <= >=`.
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
	id       NodeID
}

func NewInfixExpression(tok token.Token, left Expression, op string, right Expression) *InfixExpression {
	return &InfixExpression{Token: tok, Left: left, Operator: op, Right: right, id: newNodeID()}
}

func (e *InfixExpression) Accept(v Visitor)      { v.VisitInfixExpression(e) }
func (e *InfixExpression) expressionNode()       {}
func (e *InfixExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *InfixExpression) GetToken() token.Token { return e.Token }
func (e *InfixExpression) ID() NodeID            { return e.id }

// PrefixExpression is a unary operator application, e.g. `-x`.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
	id       NodeID
}

func NewPrefixExpression(tok token.Token, op string, right Expression) *PrefixExpression {
	return &PrefixExpression{Token: tok, Operator: op, Right: right, id: newNodeID()}
}

func (e *PrefixExpression) Accept(v Visitor)      { v.VisitPrefixExpression(e) }
func (e *PrefixExpression) expressionNode()       {}
func (e *PrefixExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *PrefixExpression) GetToken() token.Token { return e.Token }
func (e *PrefixExpression) ID() NodeID            { return e.id }

// AddressOfExpression is `&x`, the address of a variable.
// TIP's grammar only ever takes the address of an identifier.
type AddressOfExpression struct {
	Token  token.Token // the '&' token
	Target *Identifier
	id     NodeID
}

func NewAddressOfExpression(tok token.Token, target *Identifier) *AddressOfExpression {
	return &AddressOfExpression{Token: tok, Target: target, id: newNodeID()}
}

func (e *AddressOfExpression) Accept(v Visitor)      { v.VisitAddressOfExpression(e) }
func (e *AddressOfExpression) expressionNode()       {}
func (e *AddressOfExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *AddressOfExpression) GetToken() token.Token { return e.Token }
func (e *AddressOfExpression) ID() NodeID            { return e.id }

// DerefExpression is `*e`, dereferencing a pointer-valued expression.
type DerefExpression struct {
	Token  token.Token // the '*' token
	Target Expression
	id     NodeID
}

func NewDerefExpression(tok token.Token, target Expression) *DerefExpression {
	return &DerefExpression{Token: tok, Target: target, id: newNodeID()}
}

func (e *DerefExpression) Accept(v Visitor)      { v.VisitDerefExpression(e) }
func (e *DerefExpression) expressionNode()       {}
func (e *DerefExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *DerefExpression) GetToken() token.Token { return e.Token }
func (e *DerefExpression) ID() NodeID            { return e.id }

// AllocExpression is `alloc e`, heap allocation of a new cell
// initialized with e's value.
type AllocExpression struct {
	Token token.Token // the 'alloc' token
	Value Expression
	id    NodeID
}

func NewAllocExpression(tok token.Token, value Expression) *AllocExpression {
	return &AllocExpression{Token: tok, Value: value, id: newNodeID()}
}

func (e *AllocExpression) Accept(v Visitor)      { v.VisitAllocExpression(e) }
func (e *AllocExpression) expressionNode()       {}
func (e *AllocExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *AllocExpression) GetToken() token.Token { return e.Token }
func (e *AllocExpression) ID() NodeID            { return e.id }

// CallExpression is `e(e1, ..., en)`.
type CallExpression struct {
	Token     token.Token // the '(' token
	Function  Expression
	Arguments []Expression
	id        NodeID
}

func NewCallExpression(tok token.Token, fn Expression, args []Expression) *CallExpression {
	return &CallExpression{Token: tok, Function: fn, Arguments: args, id: newNodeID()}
}

func (e *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(e) }
func (e *CallExpression) expressionNode()       {}
func (e *CallExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *CallExpression) GetToken() token.Token { return e.Token }
func (e *CallExpression) ID() NodeID            { return e.id }

// RecordField is one `(fieldName, expr)` pair in a record literal.
// The field name is a label, never a variable use.
type RecordField struct {
	Name  string
	Value Expression
}

// RecordLiteral constructs a record value from named fields.
type RecordLiteral struct {
	Token  token.Token // the '{' token
	Fields []RecordField
	id     NodeID
}

func NewRecordLiteral(tok token.Token, fields []RecordField) *RecordLiteral {
	return &RecordLiteral{Token: tok, Fields: fields, id: newNodeID()}
}

func (e *RecordLiteral) Accept(v Visitor)      { v.VisitRecordLiteral(e) }
func (e *RecordLiteral) expressionNode()       {}
func (e *RecordLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *RecordLiteral) GetToken() token.Token { return e.Token }
func (e *RecordLiteral) ID() NodeID            { return e.id }

// FieldAccessExpression is a head expression followed by a chain of
// field names, e.g. `p.next.value`. Field names after the
// head are labels, not identifier uses.
type FieldAccessExpression struct {
	Token  token.Token // the first '.' token
	Target Expression
	Fields []string
	id     NodeID
}

func NewFieldAccessExpression(tok token.Token, target Expression, fields []string) *FieldAccessExpression {
	return &FieldAccessExpression{Token: tok, Target: target, Fields: fields, id: newNodeID()}
}

func (e *FieldAccessExpression) Accept(v Visitor)      { v.VisitFieldAccessExpression(e) }
func (e *FieldAccessExpression) expressionNode()       {}
func (e *FieldAccessExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *FieldAccessExpression) GetToken() token.Token { return e.Token }
func (e *FieldAccessExpression) ID() NodeID            { return e.id }

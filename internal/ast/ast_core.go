// Package ast defines TIP's abstract syntax: a closed family of
// statement and expression variants plus the Visitor contract shared by
// the constraint generator and the pretty-printer (the symbol resolver
// walks the tree with its own traversal).
//
// Concrete syntax is out of scope here: this package describes only the
// tree an external parser must produce.
package ast

import (
	"github.com/google/uuid"

	"github.com/funvibe/funxy/internal/token"
)

// NodeID is a stable identity for an AST node, independent of its
// pointer value. The constraint generator and the result facade key
// maps by NodeID so identity survives any future copying of the tree.
type NodeID uuid.UUID

func newNodeID() NodeID { return NodeID(uuid.New()) }

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that appears in statement position.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that appears in expression position. Every
// expression carries a stable ID used as the constraint
// generator's and result facade's map key.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
	ID() NodeID
}

// Program is the root node: an ordered list of function definitions.
type Program struct {
	Functions []*FunctionStatement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Functions) > 0 {
		return p.Functions[0].TokenLiteral()
	}
	return ""
}

// Identifier is both a binding site (parameter, var-decl name,
// function name) and a use site (a reference to one). The symbol
// resolver maps use-site Identifiers to their binding-site Identifier.
type Identifier struct {
	Token token.Token
	Value string
	id    NodeID
}

// NewIdentifier mints an Identifier with a fresh stable ID.
func NewIdentifier(tok token.Token, value string) *Identifier {
	return &Identifier{Token: tok, Value: value, id: newNodeID()}
}

func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) ID() NodeID            { return i.id }

// IntegerLiteral is an integer constant.
type IntegerLiteral struct {
	Token token.Token
	Value int64
	id    NodeID
}

func NewIntegerLiteral(tok token.Token, value int64) *IntegerLiteral {
	return &IntegerLiteral{Token: tok, Value: value, id: newNodeID()}
}

func (l *IntegerLiteral) Accept(v Visitor)      { v.VisitIntegerLiteral(l) }
func (l *IntegerLiteral) expressionNode()       {}
func (l *IntegerLiteral) TokenLiteral() string  { return l.Token.Lexeme }
func (l *IntegerLiteral) GetToken() token.Token { return l.Token }
func (l *IntegerLiteral) ID() NodeID            { return l.id }

// BooleanLiteral is sugar for an integer constant:
// the constraint generator treats it exactly like IntegerLiteral.
type BooleanLiteral struct {
	Token token.Token
	Value bool
	id    NodeID
}

func NewBooleanLiteral(tok token.Token, value bool) *BooleanLiteral {
	return &BooleanLiteral{Token: tok, Value: value, id: newNodeID()}
}

func (l *BooleanLiteral) Accept(v Visitor)      { v.VisitBooleanLiteral(l) }
func (l *BooleanLiteral) expressionNode()       {}
func (l *BooleanLiteral) TokenLiteral() string  { return l.Token.Lexeme }
func (l *BooleanLiteral) GetToken() token.Token { return l.Token }
func (l *BooleanLiteral) ID() NodeID            { return l.id }

// NullLiteral is the single constant of pointer type; the generator
// gives it `Ptr(fresh Var)` rather than pinning down what it points to.
type NullLiteral struct {
	Token token.Token
	id    NodeID
}

func NewNullLiteral(tok token.Token) *NullLiteral {
	return &NullLiteral{Token: tok, id: newNodeID()}
}

func (l *NullLiteral) Accept(v Visitor)      { v.VisitNullLiteral(l) }
func (l *NullLiteral) expressionNode()       {}
func (l *NullLiteral) TokenLiteral() string  { return l.Token.Lexeme }
func (l *NullLiteral) GetToken() token.Token { return l.Token }
func (l *NullLiteral) ID() NodeID            { return l.id }

// StringLiteral is a string constant.
type StringLiteral struct {
	Token token.Token
	Value string
	id    NodeID
}

func NewStringLiteral(tok token.Token, value string) *StringLiteral {
	return &StringLiteral{Token: tok, Value: value, id: newNodeID()}
}

func (l *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(l) }
func (l *StringLiteral) expressionNode()       {}
func (l *StringLiteral) TokenLiteral() string  { return l.Token.Lexeme }
func (l *StringLiteral) GetToken() token.Token { return l.Token }
func (l *StringLiteral) ID() NodeID            { return l.id }

// InputExpression is the `input` expression, always of type Int.
type InputExpression struct {
	Token token.Token
	id    NodeID
}

func NewInputExpression(tok token.Token) *InputExpression {
	return &InputExpression{Token: tok, id: newNodeID()}
}

func (e *InputExpression) Accept(v Visitor)      { v.VisitInputExpression(e) }
func (e *InputExpression) expressionNode()       {}
func (e *InputExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *InputExpression) GetToken() token.Token { return e.Token }
func (e *InputExpression) ID() NodeID            { return e.id }

package ast

import (
	"strings"

	"github.com/agenthands/superecma/pkg/compiler/lexer"
)

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	// Pos returns the token the node was built from.
	Pos() lexer.Token
	// TokenLiteral returns the text of that token.
	TokenLiteral() string
	// String renders the node approximately as source.
	String() string
}

// Expression represents an expression that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement represents a standalone unit of execution.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() lexer.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Token{}
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// VarStatement: var NAME [= VALUE];
type VarStatement struct {
	Token lexer.Token // the 'var' token
	Name  *Identifier
	Value Expression // nil when there is no initializer
}

// NewVarStatement builds a VarStatement. It panics if name is nil.
func NewVarStatement(tok lexer.Token, name *Identifier, value Expression) *VarStatement {
	if name == nil {
		panic("ast: VarStatement requires a name")
	}
	return &VarStatement{Token: tok, Name: name, Value: value}
}

func (v *VarStatement) Pos() lexer.Token     { return v.Token }
func (v *VarStatement) TokenLiteral() string { return v.Token.Text }
func (v *VarStatement) statementNode()       {}

func (v *VarStatement) String() string {
	var sb strings.Builder
	sb.WriteString(v.TokenLiteral())
	sb.WriteByte(' ')
	sb.WriteString(v.Name.String())
	if v.Value != nil {
		sb.WriteString(" = ")
		sb.WriteString(v.Value.String())
	}
	sb.WriteByte(';')
	return sb.String()
}

// ExpressionStatement wraps an expression used as a statement: EXPR [;]
type ExpressionStatement struct {
	Token      lexer.Token // first token of the expression
	Expression Expression
}

// NewExpressionStatement builds an ExpressionStatement. It panics if expr is
// nil.
func NewExpressionStatement(tok lexer.Token, expr Expression) *ExpressionStatement {
	if expr == nil {
		panic("ast: ExpressionStatement requires an expression")
	}
	return &ExpressionStatement{Token: tok, Expression: expr}
}

func (e *ExpressionStatement) Pos() lexer.Token     { return e.Token }
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Text }
func (e *ExpressionStatement) String() string       { return e.Expression.String() + ";" }
func (e *ExpressionStatement) statementNode()       {}

// Literal values
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (i *IntegerLiteral) Pos() lexer.Token     { return i.Token }
func (i *IntegerLiteral) TokenLiteral() string { return i.Token.Text }
func (i *IntegerLiteral) String() string       { return i.Token.Text }
func (i *IntegerLiteral) expressionNode()      {}

type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (f *FloatLiteral) Pos() lexer.Token     { return f.Token }
func (f *FloatLiteral) TokenLiteral() string { return f.Token.Text }
func (f *FloatLiteral) String() string       { return f.Token.Text }
func (f *FloatLiteral) expressionNode()      {}

// StringLiteral keeps the quoted lexeme in Token and the contents in Value.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) Pos() lexer.Token     { return s.Token }
func (s *StringLiteral) TokenLiteral() string { return s.Token.Text }
func (s *StringLiteral) String() string       { return s.Token.Text }
func (s *StringLiteral) expressionNode()      {}

type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) Pos() lexer.Token     { return i.Token }
func (i *Identifier) TokenLiteral() string { return i.Token.Text }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) expressionNode()      {}

// CallExpression: FUNCTION ( ARGS )
type CallExpression struct {
	Token     lexer.Token // the '(' token
	Function  Expression
	Arguments []Expression
}

// NewCallExpression builds a CallExpression. It panics if fn or any of the
// arguments is nil.
func NewCallExpression(tok lexer.Token, fn Expression, args []Expression) *CallExpression {
	if fn == nil {
		panic("ast: CallExpression requires a function")
	}
	for _, a := range args {
		if a == nil {
			panic("ast: CallExpression arguments must not be nil")
		}
	}
	return &CallExpression{Token: tok, Function: fn, Arguments: args}
}

func (c *CallExpression) Pos() lexer.Token     { return c.Token }
func (c *CallExpression) TokenLiteral() string { return c.Token.Text }
func (c *CallExpression) expressionNode()      {}

func (c *CallExpression) String() string {
	args := make([]string, 0, len(c.Arguments))
	for _, a := range c.Arguments {
		args = append(args, a.String())
	}
	return c.Function.String() + "(" + strings.Join(args, ", ") + ")"
}

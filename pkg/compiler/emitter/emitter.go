// Package emitter lowers a parsed program into a plain Tree that can be
// written as text, JSON or YAML.
package emitter

import (
	"github.com/pkg/errors"

	"github.com/agenthands/superecma/pkg/compiler/ast"
	"github.com/agenthands/superecma/pkg/compiler/lexer"
	"github.com/agenthands/superecma/pkg/compiler/parser"
)

// Node is the serializable form of an ast.Node. Only the fields that apply
// to Kind are set.
type Node struct {
	Kind   string `json:"kind" yaml:"kind"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`

	Name  string      `json:"name,omitempty" yaml:"name,omitempty"`
	Value interface{} `json:"value,omitempty" yaml:"value,omitempty"`
	// Const indexes Tree.Constants for string literals.
	Const *int `json:"const,omitempty" yaml:"const,omitempty"`

	Function   *Node   `json:"function,omitempty" yaml:"function,omitempty"`
	Arguments  []*Node `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Init       *Node   `json:"init,omitempty" yaml:"init,omitempty"`
	Expression *Node   `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// Diagnostic mirrors parser.Diagnostic with serialization tags.
type Diagnostic struct {
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Message string `json:"message" yaml:"message"`
}

// Tree is the emitted program.
type Tree struct {
	Statements  []*Node      `json:"statements" yaml:"statements"`
	Constants   []string     `json:"constants,omitempty" yaml:"constants,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

type Emitter struct {
	constants []string
	index     map[string]int
}

func NewEmitter() *Emitter {
	return &Emitter{index: make(map[string]int)}
}

// Emit converts prog into a Tree. diags may be nil.
func (e *Emitter) Emit(prog *ast.Program, diags []parser.Diagnostic) (*Tree, error) {
	tree := &Tree{Statements: []*Node{}}
	for _, stmt := range prog.Statements {
		n, err := e.emitNode(stmt)
		if err != nil {
			return nil, err
		}
		tree.Statements = append(tree.Statements, n)
	}
	for _, d := range diags {
		tree.Diagnostics = append(tree.Diagnostics, Diagnostic{Line: d.Line, Column: d.Column, Message: d.Msg})
	}
	tree.Constants = e.constants
	return tree, nil
}

func (e *Emitter) emitNode(node ast.Node) (*Node, error) {
	tok := node.Pos()
	out := &Node{Line: tok.Line, Column: tok.Column}

	switch n := node.(type) {
	case *ast.ExpressionStatement:
		out.Kind = "ExpressionStatement"
		expr, err := e.emitNode(n.Expression)
		if err != nil {
			return nil, err
		}
		out.Expression = expr

	case *ast.VarStatement:
		out.Kind = "VarStatement"
		out.Name = n.Name.Value
		if n.Value != nil {
			init, err := e.emitNode(n.Value)
			if err != nil {
				return nil, err
			}
			out.Init = init
		}

	case *ast.Identifier:
		out.Kind = "Identifier"
		out.Name = n.Value

	case *ast.IntegerLiteral:
		out.Kind = "IntegerLiteral"
		out.Value = n.Value

	case *ast.FloatLiteral:
		out.Kind = "FloatLiteral"
		out.Value = n.Value

	case *ast.StringLiteral:
		out.Kind = "StringLiteral"
		out.Value = n.Value
		idx := e.addConstant(n.Value)
		out.Const = &idx

	case *ast.CallExpression:
		out.Kind = "CallExpression"
		fn, err := e.emitNode(n.Function)
		if err != nil {
			return nil, err
		}
		out.Function = fn
		out.Arguments = make([]*Node, 0, len(n.Arguments))
		for _, a := range n.Arguments {
			arg, err := e.emitNode(a)
			if err != nil {
				return nil, err
			}
			out.Arguments = append(out.Arguments, arg)
		}

	default:
		return nil, errors.Errorf("emitter: unsupported node %T", node)
	}
	return out, nil
}

// addConstant interns s and returns its index in the constant pool.
func (e *Emitter) addConstant(s string) int {
	if i, ok := e.index[s]; ok {
		return i
	}
	e.constants = append(e.constants, s)
	e.index[s] = len(e.constants) - 1
	return len(e.constants) - 1
}

// TokenRecord is the serializable form of a lexer.Token.
type TokenRecord struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// Tokens scans src to the end and returns every token, EOF included.
func Tokens(src string) []TokenRecord {
	s := lexer.NewScanner(src)
	var out []TokenRecord
	for {
		tok := s.Next()
		out = append(out, TokenRecord{Kind: tok.Kind.String(), Text: tok.Text, Line: tok.Line, Column: tok.Column})
		if tok.Kind == lexer.KindEOF {
			return out
		}
	}
}

package parser

import "github.com/agenthands/superecma/pkg/compiler/lexer"

// Precedence is the binding power of an operator. Higher binds tighter.
type Precedence int

const (
	_ Precedence = iota
	Lowest
	Equals      // == !=
	LessGreater // < > <= >=
	Sum         // + -
	Product     // * /
	Prefix      // -x !x
	Call        // f(x)
	Index       // a[i]
)

var precedenceNames = map[Precedence]string{
	Lowest:      "Lowest",
	Equals:      "Equals",
	LessGreater: "LessGreater",
	Sum:         "Sum",
	Product:     "Product",
	Prefix:      "Prefix",
	Call:        "Call",
	Index:       "Index",
}

func (p Precedence) String() string {
	if name, ok := precedenceNames[p]; ok {
		return name
	}
	return "Unknown"
}

// precedences is read-only after init and shared by all parsers.
var precedences = map[lexer.Kind]Precedence{
	lexer.KindEqual:              Equals,
	lexer.KindNotEqual:           Equals,
	lexer.KindLessThan:           LessGreater,
	lexer.KindGreaterThan:        LessGreater,
	lexer.KindLessThanOrEqual:    LessGreater,
	lexer.KindGreaterThanOrEqual: LessGreater,
	lexer.KindPlus:               Sum,
	lexer.KindMinus:              Sum,
	lexer.KindAsterisk:           Product,
	lexer.KindSlash:              Product,
	lexer.KindLParen:             Call,
}

// PrecedenceOf returns the infix binding power of kind, or Lowest for kinds
// that cannot appear as an operator.
func PrecedenceOf(kind lexer.Kind) Precedence {
	if p, ok := precedences[kind]; ok {
		return p
	}
	return Lowest
}

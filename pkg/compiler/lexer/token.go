package lexer

import "fmt"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindIllegal Kind = iota
	KindEOF

	// Identifiers and literals
	KindIdentifier
	KindIntegerLiteral
	KindFloatLiteral // reserved, never produced by the scanner yet
	KindStringLiteral

	// Keywords
	KindVar
	KindWild
	KindRun
	KindDestroy
	KindRef
	KindCapture
	KindTransfer
	KindDefer
	KindUsing
	KindFunction
	KindReturn
	KindIf
	KindElse
	KindFor
	KindWhile
	KindTrue
	KindFalse
	KindNull
	KindInt
	KindFloat
	KindString

	// Operators
	KindAssign             // =
	KindPlus               // +
	KindMinus              // -
	KindAsterisk           // *
	KindSlash              // /
	KindBang               // !
	KindLessThan           // <
	KindGreaterThan        // >
	KindEqual              // ==
	KindNotEqual           // !=
	KindLessThanOrEqual    // <=
	KindGreaterThanOrEqual // >=

	// Delimiters
	KindComma     // ,
	KindSemicolon // ;
	KindColon     // :
	KindLParen    // (
	KindRParen    // )
	KindLBrace    // {
	KindRBrace    // }
	KindLBracket  // [
	KindRBracket  // ]
	KindDot       // .

	kindCount
)

var kindNames = [kindCount]string{
	KindIllegal:            "Illegal",
	KindEOF:                "EndOfFile",
	KindIdentifier:         "Identifier",
	KindIntegerLiteral:     "IntegerLiteral",
	KindFloatLiteral:       "FloatLiteral",
	KindStringLiteral:      "StringLiteral",
	KindVar:                "Var",
	KindWild:               "Wild",
	KindRun:                "Run",
	KindDestroy:            "Destroy",
	KindRef:                "Ref",
	KindCapture:            "Capture",
	KindTransfer:           "Transfer",
	KindDefer:              "Defer",
	KindUsing:              "Using",
	KindFunction:           "Function",
	KindReturn:             "Return",
	KindIf:                 "If",
	KindElse:               "Else",
	KindFor:                "For",
	KindWhile:              "While",
	KindTrue:               "True",
	KindFalse:              "False",
	KindNull:               "Null",
	KindInt:                "Int",
	KindFloat:              "Float",
	KindString:             "String",
	KindAssign:             "Assign",
	KindPlus:               "Plus",
	KindMinus:              "Minus",
	KindAsterisk:           "Asterisk",
	KindSlash:              "Slash",
	KindBang:               "Bang",
	KindLessThan:           "LessThan",
	KindGreaterThan:        "GreaterThan",
	KindEqual:              "Equal",
	KindNotEqual:           "NotEqual",
	KindLessThanOrEqual:    "LessThanOrEqual",
	KindGreaterThanOrEqual: "GreaterThanOrEqual",
	KindComma:              "Comma",
	KindSemicolon:          "Semicolon",
	KindColon:              "Colon",
	KindLParen:             "LParen",
	KindRParen:             "RParen",
	KindLBrace:             "LBrace",
	KindRBrace:             "RBrace",
	KindLBracket:           "LBracket",
	KindRBracket:           "RBracket",
	KindDot:                "Dot",
}

// String returns the name of the kind, e.g. "LessThanOrEqual".
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// keywords maps reserved words to their kinds. Wild, Run, Destroy, Ref,
// Capture, Transfer, Defer, Using, Int, Float and String are reserved in
// the Kind set but are not recognized yet, so they still lex as identifiers.
var keywords = map[string]Kind{
	"var":      KindVar,
	"function": KindFunction,
	"return":   KindReturn,
	"if":       KindIf,
	"else":     KindElse,
	"for":      KindFor,
	"while":    KindWhile,
	"true":     KindTrue,
	"false":    KindFalse,
	"null":     KindNull,
}

// LookupIdentifier returns the keyword kind for ident, or KindIdentifier.
func LookupIdentifier(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return KindIdentifier
}

// Token represents a lexical unit. Text is the exact lexeme, Line and Column
// are the 1-based position of its first character.
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(Type: %s, Literal: \"%s\", Line: %d, Column: %d)", t.Kind, t.Text, t.Line, t.Column)
}

package parser

import (
	"fmt"
	"strconv"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"

	"github.com/agenthands/superecma/pkg/compiler/ast"
	"github.com/agenthands/superecma/pkg/compiler/lexer"
)

// DefaultMaxDepth bounds expression nesting unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 10000

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(left ast.Expression) ast.Expression
)

// Diagnostic is a recoverable parse error reported at the token where it was
// detected.
type Diagnostic struct {
	Msg    string
	Line   int
	Column int
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Msg)
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger traces rule entry and every diagnostic at debug level.
func WithLogger(l slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMaxDepth sets the maximum expression nesting depth.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// WithIntegerLiterals registers the prefix rule for integer literals.
func WithIntegerLiterals() Option {
	return func(p *Parser) {
		p.registerPrefix(lexer.KindIntegerLiteral, p.parseIntegerLiteral)
	}
}

// WithVarStatements enables `var NAME [= VALUE];` declarations.
func WithVarStatements() Option {
	return func(p *Parser) {
		p.varStatements = true
	}
}

type Parser struct {
	scanner *lexer.Scanner
	curTok  lexer.Token
	peekTok lexer.Token

	diagnostics []Diagnostic

	prefixParseFns map[lexer.Kind]prefixParseFn
	infixParseFns  map[lexer.Kind]infixParseFn

	depth         int
	maxDepth      int
	tooDeep       bool
	varStatements bool
	log           slog.Logger
}

func NewParser(s *lexer.Scanner, opts ...Option) *Parser {
	p := &Parser{
		scanner:        s,
		prefixParseFns: make(map[lexer.Kind]prefixParseFn),
		infixParseFns:  make(map[lexer.Kind]infixParseFn),
		maxDepth:       DefaultMaxDepth,
		log:            logger.NewNopLogger(),
	}

	p.registerPrefix(lexer.KindIdentifier, p.parseIdentifier)
	p.registerPrefix(lexer.KindStringLiteral, p.parseStringLiteral)
	p.registerInfix(lexer.KindLParen, p.parseCallExpression)

	for _, opt := range opts {
		opt(p)
	}

	// Read two tokens, so curTok and peekTok are both set
	p.nextToken()
	p.nextToken()
	return p
}

// Parse is a convenience wrapper that parses src in one go. The returned
// error aggregates every diagnostic; the program is returned regardless.
func Parse(src string, opts ...Option) (*ast.Program, error) {
	p := NewParser(lexer.NewScanner(src), opts...)
	prog := p.ParseProgram()
	return prog, p.Err()
}

func (p *Parser) registerPrefix(kind lexer.Kind, fn prefixParseFn) {
	p.prefixParseFns[kind] = fn
}

func (p *Parser) registerInfix(kind lexer.Kind, fn infixParseFn) {
	p.infixParseFns[kind] = fn
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.scanner.Next()
}

// ParseProgram parses statements until EOF. It never returns nil; statements
// that fail to parse are dropped and reported through Errors.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for p.curTok.Kind != lexer.KindEOF {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

// Errors returns the diagnostic messages in the order they were recorded.
func (p *Parser) Errors() []string {
	msgs := make([]string, len(p.diagnostics))
	for i, d := range p.diagnostics {
		msgs[i] = d.Msg
	}
	return msgs
}

// Diagnostics returns the diagnostics with their source positions.
func (p *Parser) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), p.diagnostics...)
}

// Err returns nil when parsing was clean, otherwise a *multierror.Error
// holding every Diagnostic.
func (p *Parser) Err() error {
	var result *multierror.Error
	for _, d := range p.diagnostics {
		result = multierror.Append(result, d)
	}
	return result.ErrorOrNil()
}

func (p *Parser) errorf(at lexer.Token, format string, args ...interface{}) {
	// After a depth error the input has been skipped; report nothing more.
	if p.tooDeep {
		return
	}
	d := Diagnostic{Msg: fmt.Sprintf(format, args...), Line: at.Line, Column: at.Column}
	p.log.Debugf("parse error: %s", d)
	p.diagnostics = append(p.diagnostics, d)
}

func (p *Parser) peekTokenIs(kind lexer.Kind) bool {
	return p.peekTok.Kind == kind
}

// expectPeek advances onto the peek token if it has the given kind and
// records a diagnostic otherwise.
func (p *Parser) expectPeek(kind lexer.Kind) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}
	p.errorf(p.peekTok, "expected next token to be %s, got %s", kind, p.peekTok.Kind)
	return false
}

func (p *Parser) peekPrecedence() Precedence {
	return PrecedenceOf(p.peekTok.Kind)
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Kind {
	case lexer.KindSemicolon:
		// Empty statement.
		return nil
	case lexer.KindVar:
		if p.varStatements {
			return p.parseVarStatement()
		}
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseVarStatement() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(lexer.KindIdentifier) {
		return nil
	}
	name := &ast.Identifier{Token: p.curTok, Value: p.curTok.Text}

	var value ast.Expression
	if p.peekTokenIs(lexer.KindAssign) {
		p.nextToken() // move to '='
		p.nextToken() // move to the initializer
		value = p.parseExpression(Lowest)
		if value == nil {
			p.skipSemicolon()
			return nil
		}
	}

	p.skipSemicolon()
	return ast.NewVarStatement(tok, name, value)
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curTok
	expr := p.parseExpression(Lowest)

	// The trailing semicolon is optional.
	p.skipSemicolon()

	if expr == nil {
		return nil
	}
	return ast.NewExpressionStatement(tok, expr)
}

func (p *Parser) skipSemicolon() {
	if p.peekTokenIs(lexer.KindSemicolon) {
		p.nextToken()
	}
}

func (p *Parser) skipToEOF() {
	for p.curTok.Kind != lexer.KindEOF {
		p.nextToken()
	}
}

func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > p.maxDepth {
		p.errorf(p.curTok, "expression nesting exceeds maximum depth of %d", p.maxDepth)
		p.tooDeep = true
		p.skipToEOF()
		return nil
	}

	p.log.Debugf("parseExpression(%s) at %s", precedence, p.curTok)

	prefix := p.prefixParseFns[p.curTok.Kind]
	if prefix == nil {
		p.errorf(p.curTok, "no prefix parse function for %s found", p.curTok.Kind)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(lexer.KindSemicolon) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekTok.Kind]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curTok, Value: p.curTok.Text}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.curTok
	value := tok.Text
	// The scanner only emits terminated strings, so both quotes are present.
	if len(value) >= 2 {
		value = value[1 : len(value)-1]
	}
	return &ast.StringLiteral{Token: tok, Value: value}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curTok
	v, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		p.errorf(tok, "could not parse %q as integer", tok.Text)
		return nil
	}
	return &ast.IntegerLiteral{Token: tok, Value: v}
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	tok := p.curTok // '('
	return ast.NewCallExpression(tok, fn, p.parseCallArguments())
}

// parseCallArguments parses ARG {, ARG} ) with curTok on '('. A missing ')'
// is reported and yields an empty argument list.
func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekTokenIs(lexer.KindRParen) {
		p.nextToken()
		return args
	}

	p.nextToken()
	if arg := p.parseExpression(Lowest); arg != nil {
		args = append(args, arg)
	}

	for p.peekTokenIs(lexer.KindComma) {
		p.nextToken() // move to ','
		p.nextToken() // move to the next argument
		if arg := p.parseExpression(Lowest); arg != nil {
			args = append(args, arg)
		}
	}

	if !p.expectPeek(lexer.KindRParen) {
		return []ast.Expression{}
	}
	return args
}

package lexer

import (
	"strings"
	"unicode/utf8"
)

// Scanner performs lexical analysis on superecma source.
// Token text is sliced out of the source, so scanning does not allocate.
type Scanner struct {
	source string
	cursor int
	line   int
	column int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.column = 1
}

// Next returns the next token from the source. Once the input is exhausted
// every call returns the same EOF token.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	line, column := s.line, s.column
	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Line: line, Column: column}
	}

	start := s.cursor
	ch := s.source[s.cursor]

	// 1. Identifiers and keywords
	if isLetter(ch) {
		text := s.scanIdentifier()
		return Token{Kind: LookupIdentifier(text), Text: text, Line: line, Column: column}
	}

	// 2. Numbers
	if isDigit(ch) {
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			s.advance()
		}
		return Token{Kind: KindIntegerLiteral, Text: s.source[start:s.cursor], Line: line, Column: column}
	}

	// 3. Strings
	if ch == '"' {
		return s.scanString(line, column)
	}

	// 4. Operators and delimiters
	kind := KindIllegal
	switch ch {
	case '=':
		kind = s.twoChar(KindAssign, KindEqual)
	case '!':
		kind = s.twoChar(KindBang, KindNotEqual)
	case '<':
		kind = s.twoChar(KindLessThan, KindLessThanOrEqual)
	case '>':
		kind = s.twoChar(KindGreaterThan, KindGreaterThanOrEqual)
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindAsterisk
	case '/':
		kind = KindSlash
	case ',':
		kind = KindComma
	case ';':
		kind = KindSemicolon
	case ':':
		kind = KindColon
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case '{':
		kind = KindLBrace
	case '}':
		kind = KindRBrace
	case '[':
		kind = KindLBracket
	case ']':
		kind = KindRBracket
	case '.':
		kind = KindDot
	}

	// Illegal input still consumes exactly one character.
	s.advance()
	return Token{Kind: kind, Text: s.source[start:s.cursor], Line: line, Column: column}
}

// twoChar picks the two-character operator when '=' directly follows the
// current character, consuming one extra character for it.
func (s *Scanner) twoChar(single, double Kind) Kind {
	if s.peek() == '=' {
		s.advance()
		return double
	}
	return single
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\n', '\r':
			s.advance()
		default:
			return
		}
	}
}

func (s *Scanner) scanIdentifier() string {
	start := s.cursor
	for s.cursor < len(s.source) && (isLetter(s.source[s.cursor]) || isDigit(s.source[s.cursor])) {
		s.advance()
	}
	return s.source[start:s.cursor]
}

// scanString scans a double-quoted literal. Without a closing quote only the
// opening '"' is returned, as an Illegal token, and scanning resumes after it.
func (s *Scanner) scanString(line, column int) Token {
	start := s.cursor
	if strings.IndexByte(s.source[start+1:], '"') < 0 {
		s.advance()
		return Token{Kind: KindIllegal, Text: s.source[start:s.cursor], Line: line, Column: column}
	}

	s.advance() // Skip opening '"'
	for s.source[s.cursor] != '"' {
		s.advance()
	}
	s.advance() // Skip closing '"'
	return Token{Kind: KindStringLiteral, Text: s.source[start:s.cursor], Line: line, Column: column}
}

// advance consumes one character, which may be a multi-byte rune.
func (s *Scanner) advance() {
	if s.cursor >= len(s.source) {
		return
	}
	ch := s.source[s.cursor]
	if ch < utf8.RuneSelf {
		s.cursor++
	} else {
		_, width := utf8.DecodeRuneInString(s.source[s.cursor:])
		s.cursor += width
	}
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

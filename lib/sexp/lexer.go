// Package sexp reads the textual tree-literal syntax into pphtml nodes.
//
// The grammar is small: parenthesized lists open with a tag symbol,
// double-quoted strings are text, bare numbers are numeric content, and
// every other bare token is a symbol. Comments run from ";" to the end
// of the line.
//
//	(div @main .card :href "/home"
//	    "hello"         ; text child
//	    (span 42))
package sexp

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenLParen
	tokenRParen
	tokenString
	tokenNumber
	tokenSymbol
)

type token struct {
	kind tokenKind
	text string // decoded for strings, literal otherwise
	line int
}

type lexer struct {
	src  string
	pos  int
	line int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokenEOF, line: l.line}, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '(':
		l.pos++
		return token{kind: tokenLParen, text: "(", line: l.line}, nil
	case c == ')':
		l.pos++
		return token{kind: tokenRParen, text: ")", line: l.line}, nil
	case c == '"':
		return l.lexString()
	case isNumberStart(l.src[l.pos:]):
		return l.lexNumber(), nil
	default:
		return l.lexSymbol(), nil
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == ';':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *lexer) lexString() (token, error) {
	start := l.line
	l.pos++ // opening quote
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '"':
			l.pos++
			return token{kind: tokenString, text: b.String(), line: start}, nil
		case '\\':
			l.pos++
			if l.pos >= len(l.src) {
				return token{}, fmt.Errorf("%w: line %d: unterminated escape", ErrSyntax, l.line)
			}
			switch l.src[l.pos] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				return token{}, fmt.Errorf("%w: line %d: unknown escape \\%c", ErrSyntax, l.line, l.src[l.pos])
			}
			l.pos++
		case '\n':
			l.line++
			b.WriteByte(c)
			l.pos++
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return token{}, fmt.Errorf("%w: line %d: unterminated string", ErrSyntax, start)
}

func (l *lexer) lexNumber() token {
	start := l.pos
	if c := l.src[l.pos]; c == '+' || c == '-' {
		l.pos++
	}
	seenDot := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '.' && !seenDot {
			seenDot = true
			l.pos++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		l.pos++
	}
	return token{kind: tokenNumber, text: l.src[start:l.pos], line: l.line}
}

func (l *lexer) lexSymbol() token {
	start := l.pos
	for l.pos < len(l.src) && !isDelimiter(l.src[l.pos]) {
		l.pos++
	}
	return token{kind: tokenSymbol, text: l.src[start:l.pos], line: l.line}
}

// isNumberStart distinguishes numbers from symbols like "-foo": a sign
// counts only when a digit follows.
func isNumberStart(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return true
	}
	return (s[0] == '+' || s[0] == '-') && len(s) > 1 && s[1] >= '0' && s[1] <= '9'
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '"', ';':
		return true
	}
	return false
}

package sexp

import (
	"errors"
	"fmt"
	"strconv"

	pphtml "github.com/7696122/pp-html"
)

// ErrSyntax is wrapped by every parse failure, with line information in
// the message.
var ErrSyntax = errors.New("sexp: syntax error")

// Parse reads one tree literal and returns its canonical node form.
// Trailing content after the root datum is rejected.
func Parse(src string) (pphtml.Node, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind == tokenEOF {
		return nil, fmt.Errorf("%w: empty input", ErrSyntax)
	}
	n, err := p.datum()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, fmt.Errorf("%w: line %d: unexpected %q after root form", ErrSyntax, p.tok.line, p.tok.text)
	}
	return n, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) datum() (pphtml.Node, error) {
	switch p.tok.kind {
	case tokenLParen:
		return p.list()
	case tokenString:
		n := pphtml.Text{Value: p.tok.text}
		return n, p.advance()
	case tokenNumber:
		f, err := strconv.ParseFloat(p.tok.text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad number %q", ErrSyntax, p.tok.line, p.tok.text)
		}
		n := pphtml.Number{Value: f}
		return n, p.advance()
	case tokenSymbol:
		n := pphtml.Sym{Name: p.tok.text}
		return n, p.advance()
	case tokenRParen:
		return nil, fmt.Errorf("%w: line %d: unexpected )", ErrSyntax, p.tok.line)
	default:
		return nil, fmt.Errorf("%w: line %d: unexpected end of input", ErrSyntax, p.tok.line)
	}
}

func (p *parser) list() (pphtml.Node, error) {
	line := p.tok.line
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokenSymbol {
		return nil, fmt.Errorf("%w: line %d: list must open with a tag symbol", ErrSyntax, line)
	}
	el := pphtml.Element{Tag: p.tok.text}
	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.tok.kind != tokenRParen {
		if p.tok.kind == tokenEOF {
			return nil, fmt.Errorf("%w: line %d: unclosed list", ErrSyntax, line)
		}
		arg, err := p.datum()
		if err != nil {
			return nil, err
		}
		el.Args = append(el.Args, arg)
	}
	return el, p.advance()
}

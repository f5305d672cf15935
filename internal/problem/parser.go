package problem

import (
	"fmt"

	"github.com/maximaximal/xccsolve/internal/dlx"
)

// Parse reads the primary/secondary/option text format described in
// spec.md §6 and builds a *dlx.Problem from it, calling PrepareOptions and
// EndOptions before returning. It does not call ComputeNextResult. opts,
// stats and logger are passed straight through to dlx.NewProblem.
func Parse(src string, opts dlx.Options, stats *dlx.Stats, logger dlx.Logger) (*dlx.Problem, error) {
	p := &parser{lex: newLexer(src), opts: opts, stats: stats, logger: logger}
	p.advance()
	return p.parseProblem()
}

type parser struct {
	lex    *lexer
	tok    token
	opts   dlx.Options
	stats  *dlx.Stats
	logger dlx.Logger
}

func (p *parser) advance() {
	p.tok = p.lex.next()
}

func (p *parser) errf(base error, format string, args ...interface{}) error {
	if format == "" {
		return &ParseError{Line: p.tok.line, Col: p.tok.col, Err: base}
	}
	return &ParseError{Line: p.tok.line, Col: p.tok.col, Err: fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...))}
}

func (p *parser) parseProblem() (*dlx.Problem, error) {
	prob := dlx.NewProblem(p.opts, p.stats, p.logger)

	if p.tok.kind != tokLAngle {
		return nil, p.errf(ErrExpectedPrimaryBlock, "")
	}
	p.advance()
	for p.tok.kind != tokRAngle {
		if p.tok.kind == tokEOF {
			return nil, p.errf(ErrUnterminatedBlock, "")
		}
		if err := p.parsePrimaryDecl(prob); err != nil {
			return nil, err
		}
	}
	p.advance() // consume '>'

	if p.tok.kind == tokLSquare {
		p.advance()
		for p.tok.kind != tokRSquare {
			if p.tok.kind == tokEOF {
				return nil, p.errf(ErrUnterminatedBlock, "")
			}
			name, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			if _, err := prob.DefineSecondaryItem(name); err != nil {
				return nil, &ParseError{Line: p.tok.line, Col: p.tok.col, Err: err}
			}
		}
		p.advance() // consume ']'
	}

	if err := prob.PrepareOptions(); err != nil {
		return nil, &ParseError{Line: p.tok.line, Col: p.tok.col, Err: err}
	}

	for p.tok.kind != tokEOF {
		if err := p.parseOption(prob); err != nil {
			return nil, err
		}
	}

	if err := prob.EndOptions(); err != nil {
		return nil, &ParseError{Line: p.tok.line, Col: p.tok.col, Err: err}
	}
	return prob, nil
}

// parsePrimaryDecl reads one "name" or "name : u" or "name : u ; v" entry
// from the primary block.
func (p *parser) parsePrimaryDecl(prob *dlx.Problem) error {
	name, err := p.expectIdent()
	if err != nil {
		return err
	}
	if p.tok.kind != tokColon {
		_, err := prob.DefinePrimaryItem(name)
		if err != nil {
			return &ParseError{Line: p.tok.line, Col: p.tok.col, Err: err}
		}
		return nil
	}
	p.advance() // consume ':'
	u, err := p.expectNumber()
	if err != nil {
		return err
	}
	v := u
	if p.tok.kind == tokSemi {
		p.advance()
		v, err = p.expectNumber()
		if err != nil {
			return err
		}
	}
	if _, err := prob.DefinePrimaryItemWithMultiplicity(name, u, v); err != nil {
		return &ParseError{Line: p.tok.line, Col: p.tok.col, Err: err}
	}
	return nil
}

// parseOption reads one semicolon-terminated option line and feeds it to
// the builder via BeginOption/AddItem(WithColor)/EndOption.
func (p *parser) parseOption(prob *dlx.Problem) error {
	if err := prob.BeginOption(); err != nil {
		return &ParseError{Line: p.tok.line, Col: p.tok.col, Err: err}
	}
	for p.tok.kind != tokSemi {
		if p.tok.kind == tokEOF {
			return p.errf(ErrExpectedSemicolon, "")
		}
		name, err := p.expectIdent()
		if err != nil {
			return err
		}
		idx, ok := prob.ItemIndex(name)
		if !ok {
			return p.errf(ErrUnknownItemName, "%q", name)
		}
		color := 0
		if p.tok.kind == tokColon {
			p.advance()
			colorName, err := p.expectIdent()
			if err != nil {
				return err
			}
			color = prob.ColorIndex(colorName)
		}
		if err := prob.AddItemWithColor(idx, color); err != nil {
			return &ParseError{Line: p.tok.line, Col: p.tok.col, Err: err}
		}
	}
	p.advance() // consume ';'
	return prob.EndOption()
}

func (p *parser) expectIdent() (string, error) {
	if p.tok.kind != tokIdent {
		return "", p.errf(ErrEmptyItemName, "")
	}
	name := p.tok.text
	p.advance()
	return name, nil
}

func (p *parser) expectNumber() (int, error) {
	if p.tok.kind != tokNumber {
		return 0, p.errf(ErrInvalidMultiplicity, "")
	}
	n := 0
	for _, c := range p.tok.text {
		n = n*10 + int(c-'0')
	}
	p.advance()
	return n, nil
}

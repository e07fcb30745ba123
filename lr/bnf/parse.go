package bnf

import (
	"io"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/lr0/lr"
)

// Production is a production of a grammar source: a left hand side symbol
// with its alternatives. An empty alternative is an epsilon-production.
type Production struct {
	LHS          string
	Alternatives [][]string
	Line         int // source line of the LHS
}

// Option configures the reading of grammar sources.
type Option func(*options)

type options struct {
	strict bool
}

// Strict switches off augmentation of grammars without a start rule.
// Grammars read in strict mode have to contain a valid start rule.
func Strict(b bool) Option {
	return func(o *options) {
		o.strict = b
	}
}

// Productions reads the productions of a grammar source, without building
// a grammar. Productions appear in source order.
func Productions(r io.Reader) ([]Production, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.productions()
}

// Parse reads a grammar source and builds a grammar from it.
func Parse(name string, r io.Reader, opts ...Option) (*lr.Grammar, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	prods, err := Productions(r)
	if err != nil {
		return nil, err
	}
	if len(prods) == 0 {
		return nil, lr0.Errorf(lr0.SyntaxError, "grammar source %s contains no productions", name)
	}
	b := lr.NewGrammarBuilder(name)
	if !mentionsEOF(prods) && !o.strict {
		tracer().Infof("grammar %s has no start rule, augmenting %s", name, prods[0].LHS)
		b.Augment(prods[0].LHS)
	}
	for _, prod := range prods {
		b.AddAlternatives(prod.LHS, prod.Alternatives)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	if o.strict {
		if _, err := g.StartRule(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func mentionsEOF(prods []Production) bool {
	for _, prod := range prods {
		for _, alt := range prod.Alternatives {
			for _, name := range alt {
				if name == lr0.EndOfInput {
					return true
				}
			}
		}
	}
	return false
}

// --- Parser ----------------------------------------------------------------

// parser is a recursive descent parser for token lists of grammar sources:
//
//    source       = { line } .
//    line         = [ production | continuation ] newline .
//    production   = symbol ':' alternatives .
//    continuation = '|' alternatives .
//    alternatives = { symbol } { '|' { symbol } } .
//
type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	if p.pos >= len(p.tokens) {
		return token{}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func syntaxError(t token, format string, args ...interface{}) error {
	return lr0.Errorf(lr0.SyntaxError, format, args...).At(t.line, t.column, t.span)
}

func (p *parser) productions() ([]Production, error) {
	var prods []Production
	for p.pos < len(p.tokens) {
		switch t := p.peek(); t.typ {
		case tokNewline:
			p.next()
		case tokSymbol:
			lhs := p.next()
			if c := p.next(); c.typ != tokColon {
				err := lr0.Errorf(lr0.SyntaxError, "expected %s after %s, found %s",
					tokenName(tokColon), lhs.lexeme, c)
				return nil, err.At(c.line, c.column, lhs.span.Extend(c.span))
			}
			alts, err := p.alternatives()
			if err != nil {
				return nil, err
			}
			prods = append(prods, Production{LHS: lhs.lexeme, Alternatives: alts, Line: lhs.line})
		case tokBar:
			if len(prods) == 0 {
				return nil, syntaxError(t, "continuation line without production")
			}
			p.next()
			alts, err := p.alternatives()
			if err != nil {
				return nil, err
			}
			last := &prods[len(prods)-1]
			last.Alternatives = append(last.Alternatives, alts...)
		default:
			return nil, syntaxError(t, "unexpected %s at start of line", t)
		}
	}
	return prods, nil
}

// alternatives parses alternatives up to and including the end of line.
func (p *parser) alternatives() ([][]string, error) {
	alts := [][]string{{}}
	for {
		t := p.next()
		switch t.typ {
		case tokSymbol:
			if t.lexeme != lr0.Epsilon {
				alts[len(alts)-1] = append(alts[len(alts)-1], t.lexeme)
			}
		case tokBar:
			alts = append(alts, []string{})
		case tokNewline:
			return alts, nil
		default:
			return nil, syntaxError(t, "unexpected %s in right hand side", t)
		}
	}
}

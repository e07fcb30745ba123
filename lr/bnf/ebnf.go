package bnf

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/lr0/lr"
	"golang.org/x/exp/ebnf"
)

// FromEBNF reads a grammar in the EBNF notation of the Go language
// specification and converts it to a BNF grammar, augmented with a start
// rule for production start.
//
// Productions with a lower-case name are lexical productions. They are not
// expanded, but their names become terminals. Groups, options and
// repetitions are replaced by helper non-terminals named after the
// production they occur in, e.g. 'Expr_1'. Repetitions are translated to
// right-recursive rules.
func FromEBNF(name string, r io.Reader, start string) (*lr.Grammar, error) {
	eg, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, lr0.Errorf(lr0.SyntaxError, "%v", err)
	}
	if err = ebnf.Verify(eg, start); err != nil {
		return nil, lr0.Errorf(lr0.InvalidGrammar, "%v", err)
	}
	if isLexical(start) {
		return nil, lr0.Errorf(lr0.InvalidGrammar, "start production %s is lexical", start)
	}
	c := &ebnfConverter{
		eg:      eg,
		b:       lr.NewGrammarBuilder(name),
		helpers: make(map[string]int),
		queued:  map[string]bool{start: true},
		queue:   []string{start},
	}
	c.b.Augment(start)
	for len(c.queue) > 0 {
		pname := c.queue[0]
		c.queue = c.queue[1:]
		p := eg[pname]
		c.b.AddAlternatives(pname, c.alternatives(pname, p.Expr))
	}
	return c.b.Grammar()
}

// ebnfConverter translates productions, starting with the start production
// and continuing with productions in order of reference.
type ebnfConverter struct {
	eg      ebnf.Grammar
	b       *lr.GrammarBuilder
	helpers map[string]int  // number of helpers per production
	queued  map[string]bool // productions queued for translation
	queue   []string
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// alternatives translates an expression into a list of alternatives.
func (c *ebnfConverter) alternatives(pname string, x ebnf.Expression) [][]string {
	if alt, ok := x.(ebnf.Alternative); ok {
		alts := make([][]string, 0, len(alt))
		for _, e := range alt {
			alts = append(alts, c.sequence(pname, e))
		}
		return alts
	}
	return [][]string{c.sequence(pname, x)}
}

// sequence translates an expression into a sequence of symbols.
func (c *ebnfConverter) sequence(pname string, x ebnf.Expression) []string {
	switch e := x.(type) {
	case nil:
		return []string{}
	case ebnf.Sequence:
		var seq []string
		for _, item := range e {
			seq = append(seq, c.sequence(pname, item)...)
		}
		return seq
	case *ebnf.Name:
		c.reference(e.String)
		return []string{e.String}
	case *ebnf.Token:
		return []string{e.String}
	case *ebnf.Range:
		return []string{fmt.Sprintf("%s…%s", e.Begin.String, e.End.String)}
	case *ebnf.Group:
		if _, isAlt := e.Body.(ebnf.Alternative); !isAlt {
			return c.sequence(pname, e.Body)
		}
		h := c.helper(pname)
		c.b.AddAlternatives(h, c.alternatives(pname, e.Body))
		return []string{h}
	case *ebnf.Option:
		h := c.helper(pname)
		c.b.AddAlternatives(h, append(c.alternatives(pname, e.Body), []string{}))
		return []string{h}
	case *ebnf.Repetition:
		h := c.helper(pname)
		alts := c.alternatives(pname, e.Body)
		for i := range alts {
			alts[i] = append(alts[i], h)
		}
		c.b.AddAlternatives(h, append(alts, []string{}))
		return []string{h}
	}
	tracer().Errorf("unknown EBNF expression type %T", x)
	return []string{}
}

// reference queues a non-lexical production for translation.
func (c *ebnfConverter) reference(pname string) {
	if isLexical(pname) || c.queued[pname] {
		return
	}
	c.queued[pname] = true
	c.queue = append(c.queue, pname)
}

// helper creates the name of a new helper non-terminal for production pname.
// Names of productions in the source are skipped.
func (c *ebnfConverter) helper(pname string) string {
	for {
		c.helpers[pname]++
		h := fmt.Sprintf("%s_%d", pname, c.helpers[pname])
		if _, exists := c.eg[h]; !exists {
			return h
		}
		tracer().Debugf("helper name %s taken by a production", h)
	}
}

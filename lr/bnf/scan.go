package bnf

import (
	"fmt"
	"sync"

	"github.com/npillmayer/lr0"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of grammar sources.
const (
	tokSymbol = iota + 1
	tokColon
	tokBar
	tokNewline
)

func tokenName(typ int) string {
	switch typ {
	case tokSymbol:
		return "symbol"
	case tokColon:
		return "':'"
	case tokBar:
		return "'|'"
	case tokNewline:
		return "end of line"
	}
	return "end of input"
}

// token is a token of a grammar source.
type token struct {
	typ    int
	lexeme string
	line   int
	column int
	span   lr0.Span
}

func (t token) String() string {
	if t.typ == tokSymbol {
		return fmt.Sprintf("symbol %q", t.lexeme)
	}
	return tokenName(t.typ)
}

var (
	lexer     *lexmachine.Lexer
	lexerErr  error
	lexerOnce sync.Once
)

// grammarLexer returns the DFA-based lexer for grammar sources. It is
// compiled on first use.
func grammarLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`#[^\n]*`), skip)
		lx.Add([]byte(`//[^\n]*`), skip)
		lx.Add([]byte(`'[^'\n]+'`), makeQuotedToken)
		lx.Add([]byte(`"[^"\n]+"`), makeQuotedToken)
		lx.Add([]byte(`:`), makeToken(tokColon))
		lx.Add([]byte(`\|`), makeToken(tokBar))
		lx.Add([]byte(`\r?\n`), makeToken(tokNewline))
		lx.Add([]byte(`[^ \t\r\n\|:#]+`), makeToken(tokSymbol))
		lx.Add([]byte(`( |\t|\r)+`), skip)
		if lexerErr = lx.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(typ, string(m.Bytes), m), nil
	}
}

// makeQuotedToken is an action for quoted terminals, stripping the quotes.
func makeQuotedToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return s.Token(tokSymbol, string(m.Bytes[1:len(m.Bytes)-1]), m), nil
}

// tokenize splits a grammar source into tokens. The token list always ends
// with a newline token.
func tokenize(src []byte) ([]token, error) {
	lx, err := grammarLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner(src)
	if err != nil {
		return nil, err
	}
	var tokens []token
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			span := lr0.Span{uint64(ui.StartTC), uint64(ui.FailTC)}
			return nil, lr0.Errorf(lr0.SyntaxError, "unexpected input %q", ui.Text[ui.StartTC:ui.FailTC]).
				At(ui.StartLine, ui.StartColumn, span)
		} else if err != nil {
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		tokens = append(tokens, token{
			typ:    t.Type,
			lexeme: t.Value.(string),
			line:   t.StartLine,
			column: t.StartColumn,
			span:   lr0.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
		})
	}
	if n := len(tokens); n == 0 || tokens[n-1].typ != tokNewline {
		tokens = append(tokens, token{typ: tokNewline})
	}
	tracer().Debugf("grammar source consists of %d tokens", len(tokens))
	return tokens, nil
}

/*
Package lr implements prerequisites for LR parsing: grammars, static grammar
analysis and the characteristic finite state machine (CFSM), i.e. the
canonical collection of LR(0) item sets.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Symbols are
identified by name; whether a symbol is a terminal or a non-terminal is
derived from the grammar: symbols with rules are non-terminals, all others
are terminals. Grammars may contain epsilon-productions.

The start rule is the single rule containing the end-of-input marker "$".

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").EOF()  // S  ->  A a $
    b.LHS("A").N("B").N("D").End()  // A  ->  B D
    b.LHS("B").T("b").End()         // B  ->  b
    b.LHS("B").Epsilon()            // B  ->
    b.LHS("D").T("d").End()         // D  ->  d
    b.LHS("D").Epsilon()            // D  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: S ::= [A a $]
   1: A ::= [B D]
   2: B ::= [b]
   3: B ::= []
   4: D ::= [d]
   5: D ::= []

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LRAnalysis object, which determines all
epsilon-derivable symbols (EMPTY) and computes FIRST and FOLLOW sets.
All three are fixed-point computations, run in this order.

    ga, err := lr.Analysis(g)  // analyser for grammar above
    g.EachNonTerminal(func(A *lr.Symbol) interface{} {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.FirstNames(A))
        return nil
    })

    // Output:
    FIRST(S) = [a b d]
    FIRST(A) = [b d]
    FIRST(B) = [b]
    FIRST(D) = [d]

CFSM Construction

Using grammar analysis as input, the CFSM is built from the grammar. Every
state of the CFSM is a closed set of LR(0) items. States get serial IDs in
order of discovery, the start state having ID 0. For every symbol, a
state either has a transition to another state, or NoState. Reading the
end-of-input marker in a state containing the start item with the dot before
"$" is signalled as AcceptState.

    lrgen := lr.NewTableGenerator(ga)
    cfsm, err := lrgen.CFSM()
    next := cfsm.Goto(cfsm.S0.ID, g.SymbolByName("b"))

The CFSM may be exported to Graphviz's Dot-format, and it provides a
transition table, suitable for constructing parser tables.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lr0.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.lr")
}

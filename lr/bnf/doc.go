/*
Package bnf reads grammars from text sources.

The plain format is a line-oriented BNF:

    # expression grammar
    E : E + T | T
    T : T * F
      | F
    F : ( E ) | id

Every production starts with a left hand side symbol, followed by a colon.
Alternatives are separated by '|', a line starting with '|' continues the
production of the previous line. An empty alternative denotes an
epsilon-production, as does the reserved symbol 'ε'. Symbols are separated
by whitespace; terminals containing one of the separator characters may be
quoted, e.g. '|'. Comments start with '#' or '//' and extend to the end of
the line.

If no rule mentions the end-of-input marker '$', the grammar is augmented
with a start rule S' → S $, where S is the first left hand side of the
source. Clients requesting Strict parsing have to provide a start rule
themselves.

Package bnf additionally imports grammars written in the EBNF dialect of the
Go language specification. Groups, options and repetitions are translated
to helper non-terminals.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lr0.bnf'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.bnf")
}

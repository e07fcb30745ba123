/*
Package lr0 is a toolkit for the static side of LR parsing.

It analyses context-free grammars and builds the canonical collection of
LR(0) item sets, i.e. the characteristic finite state machine (CFSM) which
underlies SLR, LALR and LR table construction. Package structure is
as follows:

■ lr: Package lr implements grammars, grammar analysis (EMPTY, FIRST and
FOLLOW sets), LR(0) items and the construction of the CFSM.

■ lr/bnf: Package bnf reads grammars from a line-oriented BNF-like source
format or from Go-style EBNF.

■ cmd/lr0: A command line tool to inspect grammars and their automata.

The base package contains data types which are used throughout all the other
packages: reserved token spellings, source spans and the error taxonomy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr0

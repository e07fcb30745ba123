package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'lr0.cli'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.cli")
}

// main() starts the lr0 command line tool. Sub-commands read a grammar
// source, analyse it and display the analysis or the CFSM, export the
// CFSM, or start an interactive explorer for it.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/lr0/lr"
	"github.com/npillmayer/lr0/lr/bnf"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "lr0",
	Short: "LR(0) grammar analysis",
	Long: `lr0 reads context-free grammars, computes EMPTY, FIRST and FOLLOW sets,
and constructs the characteristic finite state machine (CFSM) of LR(0) items.`,
	SilenceUsage: true,
}

// tracers of all packages, set to the level given by --trace.
var traceKeys = []string{"lr0.lr", "lr0.bnf", "lr0.cli"}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("trace", "t", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().Bool("strict", false, "Do not augment grammars without start rule")
	rootCmd.PersistentFlags().String("ebnf", "", "Read grammar as EBNF, starting with this production")
	rootCmd.PersistentFlags().Bool("panic-on-nonconvergence", false, "Panic if grammar analysis does not converge")

	for _, key := range []string{"trace", "strict", "ebnf", "panic-on-nonconvergence"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}

func initConfig() {
	viper.SetEnvPrefix("LR0")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	initGlobalConfig()
	initTracing(viper.GetString("trace"))
	initDisplay()
}

// initGlobalConfig makes the viper settings visible to the lr package, which
// reads its flags through gconf.
func initGlobalConfig() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(viperadapter.New("lr0"))
}

func initTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	l := tracing.TraceLevelFromString(level)
	gtrace.SyntaxTracer.SetTraceLevel(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Debugf("trace level is %s", level)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// session bundles a grammar with its analysis and its CFSM.
type session struct {
	G    *lr.Grammar
	GA   *lr.LRAnalysis
	CFSM *lr.CFSM
}

// loadGrammar reads a grammar file, analyses the grammar and builds its CFSM.
func loadGrammar(path string) (*session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var g *lr.Grammar
	if start := viper.GetString("ebnf"); start != "" {
		g, err = bnf.FromEBNF(name, f, start)
	} else {
		g, err = bnf.Parse(name, f, bnf.Strict(viper.GetBool("strict")))
	}
	if err != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", path, err)
	}
	g.Dump()
	return analyse(g)
}

func analyse(g *lr.Grammar) (*session, error) {
	ga, err := lr.Analysis(g)
	if err != nil {
		return nil, fmt.Errorf("analysing grammar %s: %w", g.Name, err)
	}
	ga.Dump()
	cfsm, err := lr.BuildCFSM(ga)
	if err != nil {
		return nil, fmt.Errorf("constructing CFSM for %s: %w", g.Name, err)
	}
	tracer().Infof("grammar %s: %d symbols, %d rules, %d states",
		g.Name, g.Size(), len(g.Rules()), cfsm.Size())
	return &session{G: g, GA: ga, CFSM: cfsm}, nil
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lr0/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl <grammar>",
	Short: "Explore the analysis and the CFSM of a grammar interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	s, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	repl, err := readline.New("lr0> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{session: s, repl: repl, out: cmd.OutOrStdout()}
	pterm.Info.Printf("Grammar %s with %d states. Quit with <ctrl>D\n", s.G.Name, s.CFSM.Size())
	intp.REPL()
	return nil
}

// Intp is our interpreter object.
type Intp struct {
	*session
	repl *readline.Instance
	out  io.Writer
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

const replHelp = `Commands:
  rules                list the rules of the grammar
  empty  <symbol>      does the symbol derive the empty string?
  first  <symbol>      FIRST set of a symbol
  follow <symbol>      FOLLOW set of a non-terminal
  state  <n>           items and transitions of state n
  goto   <n> <symbol>  successor of state n for a symbol
  help                 this message
  quit                 leave the explorer`

// Eval executes a command, given on a line by itself. It returns true if the
// explorer should quit.
func (intp *Intp) Eval(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	tracer().Debugf("command %v", args)
	switch cmd := args[0]; cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(intp.out, replHelp)
	case "rules":
		return false, intp.printTable(rulesTable(intp.G))
	case "empty", "first", "follow":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: %s <symbol>", cmd)
		}
		A, err := intp.symbol(args[1])
		if err != nil {
			return false, err
		}
		switch cmd {
		case "empty":
			fmt.Fprintf(intp.out, "empty(%s) = %s\n", A, intp.GA.EmptyState(A))
		case "first":
			fmt.Fprintf(intp.out, "FIRST(%s) = %s\n", A, setString(intp.GA.FirstNames(A)))
		default:
			if A.IsTerminal() {
				return false, fmt.Errorf("%s is a terminal", A)
			}
			fmt.Fprintf(intp.out, "FOLLOW(%s) = %s\n", A, setString(intp.GA.FollowNames(A)))
		}
	case "state":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: state <n>")
		}
		s, err := intp.state(args[1])
		if err != nil {
			return false, err
		}
		tree, err := renderTree(stateTree(s, nil))
		if err != nil {
			return false, err
		}
		fmt.Fprintln(intp.out, tree)
	case "goto":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: goto <n> <symbol>")
		}
		s, err := intp.state(args[1])
		if err != nil {
			return false, err
		}
		A, err := intp.symbol(args[2])
		if err != nil {
			return false, err
		}
		switch next := s.Goto(A); next {
		case lr.NoState:
			fmt.Fprintf(intp.out, "goto(%d, %s) = none\n", s.ID, A)
		case lr.AcceptState:
			fmt.Fprintf(intp.out, "goto(%d, %s) = accept\n", s.ID, A)
		default:
			fmt.Fprintf(intp.out, "goto(%d, %s) = %d\n", s.ID, A, next)
		}
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return false, nil
}

func (intp *Intp) symbol(name string) (*lr.Symbol, error) {
	A := intp.G.SymbolByName(name)
	if A == nil {
		return nil, fmt.Errorf("grammar %s has no symbol %q", intp.G.Name, name)
	}
	return A, nil
}

func (intp *Intp) state(arg string) (*lr.CFSMState, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("not a state number: %q", arg)
	}
	s := intp.CFSM.State(id)
	if s == nil {
		return nil, fmt.Errorf("no state %d, CFSM has %d states", id, intp.CFSM.Size())
	}
	return s, nil
}

func (intp *Intp) printTable(data pterm.TableData) error {
	table, err := renderTable(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(intp.out, table)
	return nil
}

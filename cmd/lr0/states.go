package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:   "states <grammar>",
	Short: "Print the states of the CFSM of a grammar",
	Args:  cobra.ExactArgs(1),
	RunE:  runStates,
}

func init() {
	statesCmd.Flags().IntP("state", "s", -1, "Print a single state only")
	rootCmd.AddCommand(statesCmd)
}

func runStates(cmd *cobra.Command, args []string) error {
	s, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	states := s.CFSM.States()
	if id, _ := cmd.Flags().GetInt("state"); id >= 0 {
		state := s.CFSM.State(id)
		if state == nil {
			return fmt.Errorf("no state %d, CFSM has %d states", id, s.CFSM.Size())
		}
		states = states[id : id+1]
	}
	var ll pterm.LeveledList
	for _, state := range states {
		ll = stateTree(state, ll)
	}
	tree, err := renderTree(ll)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "CFSM for %s: %d states\n", s.G.Name, s.CFSM.Size())
	fmt.Fprintln(cmd.OutOrStdout(), tree)
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lr0/lr"
	"github.com/pterm/pterm"
)

// analysisTable lists EMPTY, FIRST and FOLLOW for every non-terminal.
func analysisTable(ga *lr.LRAnalysis) pterm.TableData {
	data := pterm.TableData{{"Symbol", "Empty", "FIRST", "FOLLOW"}}
	ga.Grammar().EachNonTerminal(func(A *lr.Symbol) interface{} {
		data = append(data, []string{
			A.Name,
			ga.EmptyState(A).String(),
			setString(ga.FirstNames(A)),
			setString(ga.FollowNames(A)),
		})
		return nil
	})
	return data
}

// rulesTable lists the rules of a grammar.
func rulesTable(g *lr.Grammar) pterm.TableData {
	data := pterm.TableData{{"#", "LHS", "RHS"}}
	for _, r := range g.Rules() {
		rhs := make([]string, r.Len())
		for i, A := range r.RHS() {
			rhs[i] = A.Name
		}
		if len(rhs) == 0 {
			rhs = []string{"ε"}
		}
		data = append(data, []string{fmt.Sprintf("%d", r.Serial), r.LHS.Name, strings.Join(rhs, " ")})
	}
	return data
}

func setString(names []string) string {
	return "{ " + strings.Join(names, ", ") + " }"
}

// stateTree is a leveled list for a CFSM state: its items and transitions.
func stateTree(s *lr.CFSMState, ll pterm.LeveledList) pterm.LeveledList {
	label := fmt.Sprintf("state %d", s.ID)
	if s.Accept {
		label += " (accept)"
	}
	ll = append(ll, pterm.LeveledListItem{Level: 0, Text: label})
	for _, i := range s.Items() {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: i.String()})
	}
	if ts := s.Transitions(); len(ts) > 0 {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "transitions"})
		for _, t := range ts {
			ll = append(ll, pterm.LeveledListItem{Level: 2, Text: transitionString(t)})
		}
	}
	return ll
}

func transitionString(t lr.Transition) string {
	if t.Target == lr.AcceptState {
		return fmt.Sprintf("%s ⇒ accept", t.Symbol)
	}
	return fmt.Sprintf("%s ⇒ %d", t.Symbol, t.Target)
}

func renderTable(data pterm.TableData) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func renderTree(ll pterm.LeveledList) (string, error) {
	root := pterm.NewTreeFromLeveledList(ll)
	return pterm.DefaultTree.WithRoot(root).Srender()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <grammar>",
	Short: "Print EMPTY, FIRST and FOLLOW sets of a grammar",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("rules", false, "Print the rules of the grammar, too")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if rules, _ := cmd.Flags().GetBool("rules"); rules {
		table, err := renderTable(rulesTable(s.G))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, table)
	}
	table, err := renderTable(analysisTable(s.GA))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, table)
	return nil
}

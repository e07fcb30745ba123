package main

import (
	"io"
	"os"

	"github.com/npillmayer/lr0/lr"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <grammar>",
	Short: "Export the CFSM of a grammar to Graphviz and/or HTML",
	Long: `Export writes the CFSM of a grammar in Graphviz Dot format and its
transition table in HTML format. Without --dot or --html, Dot is written to
standard output.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("dot", "", "Output file for Graphviz Dot format")
	exportCmd.Flags().String("html", "", "Output file for HTML transition table")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	dotFile, _ := cmd.Flags().GetString("dot")
	htmlFile, _ := cmd.Flags().GetString("html")
	if dotFile == "" && htmlFile == "" {
		return s.CFSM.ToGraphViz(cmd.OutOrStdout())
	}
	if dotFile != "" {
		if err := writeFile(dotFile, s.CFSM.ToGraphViz); err != nil {
			return err
		}
		tracer().Infof("CFSM written to %s", dotFile)
	}
	if htmlFile != "" {
		err := writeFile(htmlFile, func(w io.Writer) error {
			return lr.TableAsHTML(s.CFSM, w)
		})
		if err != nil {
			return err
		}
		tracer().Infof("transition table written to %s", htmlFile)
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agenthands/superecma/pkg/compiler/emitter"
	"github.com/agenthands/superecma/pkg/compiler/lexer"
	"github.com/agenthands/superecma/pkg/compiler/parser"
)

func newParseCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and print its syntax tree",
		Long: `Parse a file and print its syntax tree. Use "-" to read stdin.

Diagnostics are printed to stderr and make the command exit with status 1.
In json and yaml output they are also part of the document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.Log.Debug)

			src, err := readSource(cmd, args[0], log)
			if err != nil {
				return err
			}

			popts := cfg.ParserOptions()
			if cfg.Parser.Trace {
				popts = append(popts, parser.WithLogger(log))
			}
			p := parser.NewParser(lexer.NewScanner(src), popts...)
			prog := p.ParseProgram()
			diags := p.Diagnostics()
			log.Debugf("parsed %d statements with %d diagnostics", len(prog.Statements), len(diags))

			format := cfg.OutputFormat()
			var treeDiags []parser.Diagnostic
			if format != emitter.FormatText {
				treeDiags = diags
			}
			tree, err := emitter.NewEmitter().Emit(prog, treeDiags)
			if err != nil {
				return err
			}
			if err := emitter.WriteTree(cmd.OutOrStdout(), tree, format); err != nil {
				return err
			}

			if len(diags) == 0 {
				return nil
			}
			printDiagnostics(cmd, args[0], diags, cfg.Output.Color)
			return ErrDiagnostics
		},
	}
}

func printDiagnostics(cmd *cobra.Command, path string, diags []parser.Diagnostic, useColor bool) {
	red := color.New(color.FgRed, color.Bold)
	if !useColor {
		red.DisableColor()
	}
	w := cmd.ErrOrStderr()
	for _, d := range diags {
		red.Fprint(w, "error")
		cmd.PrintErrf(" %s:%d:%d: %s\n", path, d.Line, d.Column, d.Msg)
	}
}

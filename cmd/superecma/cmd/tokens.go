package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agenthands/superecma/pkg/compiler/emitter"
)

func newTokensCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a file",
		Args:  cobra.ExactArgs(1),
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
			toks := emitter.Tokens(src)
			log.Debugf("scanned %d tokens", len(toks))
			return emitter.WriteTokens(cmd.OutOrStdout(), toks, cfg.OutputFormat())
		},
	}
}

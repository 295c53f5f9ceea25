package cmd

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/agenthands/superecma/pkg/config"
)

// ErrDiagnostics is returned when the input parsed with diagnostics. They
// have already been printed.
var ErrDiagnostics = errors.New("source has diagnostics")

type rootOptions struct {
	cfgFile         string
	format          string
	debug           bool
	integerLiterals bool
	varStatements   bool
	trace           bool
	noColor         bool
	maxDepth        int
}

// NewRootCommand builds the superecma command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "superecma",
		Short: "Scanner and parser front end for SuperECMA",
		Long: `superecma tokenizes and parses SuperECMA source files.

Commands:
  parse    print the syntax tree of a file
  tokens   print the token stream of a file
  version  print the version`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.StringVarP(&opts.format, "format", "f", "", "output format: text, json or yaml")
	pf.BoolVarP(&opts.debug, "debug", "d", false, "log debug output to stderr")
	pf.BoolVar(&opts.integerLiterals, "integer-literals", false, "parse integer literals")
	pf.BoolVar(&opts.varStatements, "var-statements", false, "parse var statements")
	pf.BoolVar(&opts.trace, "trace", false, "trace parser rules (implies --debug)")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")
	pf.IntVar(&opts.maxDepth, "max-depth", 0, "maximum expression nesting depth")

	root.AddCommand(newParseCommand(opts), newTokensCommand(opts), newVersionCommand())
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// settings loads the config file, if any, and applies flags that were set
// explicitly on top of it.
func (o *rootOptions) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.cfgFile != "" {
		var err error
		if cfg, err = config.Load(o.cfgFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("debug") {
		cfg.Log.Debug = o.debug
	}
	if flags.Changed("integer-literals") {
		cfg.Parser.IntegerLiterals = o.integerLiterals
	}
	if flags.Changed("var-statements") {
		cfg.Parser.VarStatements = o.varStatements
	}
	if flags.Changed("trace") {
		cfg.Parser.Trace = o.trace
	}
	if flags.Changed("no-color") {
		cfg.Output.Color = !o.noColor
	}
	if flags.Changed("max-depth") {
		cfg.Parser.MaxDepth = o.maxDepth
	}
	if cfg.Parser.Trace {
		cfg.Log.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}
	return cfg, nil
}

type syncWriter struct {
	io.Writer
}

func (syncWriter) Sync() error { return nil }

func newLogger(w io.Writer, debug bool) slog.Logger {
	sw, ok := w.(logger.SyncWriter)
	if !ok {
		sw = syncWriter{w}
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   sw,
		IncludeDebug: debug,
	})
}

// readSource reads path, or stdin when path is "-".
func readSource(cmd *cobra.Command, path string, log slog.Logger) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	log.Debugf("read %s (%s)", path, humanize.Bytes(uint64(len(data))))
	return string(data), nil
}

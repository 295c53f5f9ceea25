package parser_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/superecma/pkg/compiler/lexer"
	"github.com/agenthands/superecma/pkg/compiler/parser"
)

var update = flag.Bool("update", false, "rewrite testdata/*.golden")

// render prints one statement per line followed by the diagnostics.
func render(src string) string {
	p := parser.NewParser(lexer.NewScanner(src), parser.WithIntegerLiterals(), parser.WithVarStatements())
	prog := p.ParseProgram()

	var sb strings.Builder
	for _, s := range prog.Statements {
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("--- diagnostics\n")
	for _, d := range p.Diagnostics() {
		sb.WriteString(d.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestGolden(t *testing.T) {
	inputs, err := filepath.Glob(filepath.Join("testdata", "*.se"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	for _, in := range inputs {
		name := strings.TrimSuffix(filepath.Base(in), ".se")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(in)
			require.NoError(t, err)
			got := render(string(src))

			golden := filepath.Join("testdata", name+".golden")
			if *update {
				require.NoError(t, os.WriteFile(golden, []byte(got), 0o644))
			}
			want, err := os.ReadFile(golden)
			require.NoError(t, err)
			if diff := cmp.Diff(string(want), got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", golden, diff)
			}
		})
	}
}

package emitter_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/agenthands/superecma/pkg/compiler/emitter"
	"github.com/agenthands/superecma/pkg/compiler/lexer"
	"github.com/agenthands/superecma/pkg/compiler/parser"
)

const src = `print("hi", x); var y = print("hi")`

func emit(t *testing.T, src string) *emitter.Tree {
	t.Helper()
	p := parser.NewParser(lexer.NewScanner(src), parser.WithVarStatements(), parser.WithIntegerLiterals())
	prog := p.ParseProgram()
	tree, err := emitter.NewEmitter().Emit(prog, p.Diagnostics())
	require.NoError(t, err)
	return tree
}

func TestEmitTree(t *testing.T) {
	tree := emit(t, src)
	require.Len(t, tree.Statements, 2)
	assert.Equal(t, []string{"hi"}, tree.Constants)
	assert.Empty(t, tree.Diagnostics)

	call := tree.Statements[0].Expression
	require.NotNil(t, call)
	assert.Equal(t, "CallExpression", call.Kind)
	assert.Equal(t, "print", call.Function.Name)
	require.Len(t, call.Arguments, 2)
	require.NotNil(t, call.Arguments[0].Const)
	assert.Equal(t, 0, *call.Arguments[0].Const)

	decl := tree.Statements[1]
	assert.Equal(t, "VarStatement", decl.Kind)
	assert.Equal(t, "y", decl.Name)
	require.NotNil(t, decl.Init)
	assert.Equal(t, 0, *decl.Init.Arguments[0].Const)
}

func TestEmitDiagnostics(t *testing.T) {
	tree := emit(t, "a +")
	assert.Equal(t, []emitter.Diagnostic{{Line: 1, Column: 3, Message: "no prefix parse function for Plus found"}}, tree.Diagnostics)
}

func TestEmitIntegerValue(t *testing.T) {
	tree := emit(t, "f(42)")
	assert.Equal(t, int64(42), tree.Statements[0].Expression.Arguments[0].Value)
}

func TestWriteTreeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, emitter.WriteTree(&buf, emit(t, src+"\n+"), emitter.FormatText))

	want := `ExpressionStatement @1:1
  CallExpression @1:6
    fn: Identifier print @1:1
    arg: StringLiteral "hi" @1:7
    arg: Identifier x @1:13
VarStatement y @1:17
  = CallExpression @1:30
    fn: Identifier print @1:25
    arg: StringLiteral "hi" @1:31
error 2:1: no prefix parse function for Plus found
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTreeJSONAndYAML(t *testing.T) {
	tree := emit(t, src)

	var buf bytes.Buffer
	require.NoError(t, emitter.WriteTree(&buf, tree, emitter.FormatJSON))
	var fromJSON emitter.Tree
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	if diff := cmp.Diff(tree, &fromJSON); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	require.NoError(t, emitter.WriteTree(&buf, tree, emitter.FormatYAML))
	var fromYAML emitter.Tree
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	if diff := cmp.Diff(tree, &fromYAML); diff != "" {
		t.Errorf("YAML mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, buf.String(), "kind: VarStatement")
}

func TestTokens(t *testing.T) {
	toks := emitter.Tokens("f(\"a\")")
	assert.Equal(t, []emitter.TokenRecord{
		{Kind: "Identifier", Text: "f", Line: 1, Column: 1},
		{Kind: "LParen", Text: "(", Line: 1, Column: 2},
		{Kind: "StringLiteral", Text: `"a"`, Line: 1, Column: 3},
		{Kind: "RParen", Text: ")", Line: 1, Column: 6},
		{Kind: "EndOfFile", Text: "", Line: 1, Column: 7},
	}, toks)

	var buf bytes.Buffer
	require.NoError(t, emitter.WriteTokens(&buf, toks[:2], emitter.FormatText))
	assert.Equal(t, "1:1\tIdentifier\tf\n1:2\tLParen\t(\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    emitter.Format
		wantErr bool
	}{
		{"", emitter.FormatText, false},
		{"TEXT", emitter.FormatText, false},
		{"json", emitter.FormatJSON, false},
		{"yml", emitter.FormatYAML, false},
		{" yaml ", emitter.FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := emitter.ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

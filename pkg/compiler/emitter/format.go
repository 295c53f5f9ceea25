package emitter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format selects how a Tree or token list is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json, yaml and yml, in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.Errorf("unknown output format %q", s)
}

// WriteTree writes tree to w in the given format.
func WriteTree(w io.Writer, tree *Tree, f Format) error {
	if f == FormatText {
		return writeTreeText(w, tree)
	}
	return encode(w, tree, f)
}

// WriteTokens writes toks to w in the given format.
func WriteTokens(w io.Writer, toks []TokenRecord, f Format) error {
	if f == FormatText {
		for _, t := range toks {
			if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%s\n", t.Line, t.Column, t.Kind, t.Text); err != nil {
				return errors.Wrap(err, "writing tokens")
			}
		}
		return nil
	}
	return encode(w, toks, f)
}

func encode(w io.Writer, v interface{}, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding JSON")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	}
	return errors.Errorf("unsupported format %q", f)
}

func writeTreeText(w io.Writer, tree *Tree) error {
	var sb strings.Builder
	for _, n := range tree.Statements {
		writeNodeText(&sb, n, "", 0)
	}
	for _, d := range tree.Diagnostics {
		fmt.Fprintf(&sb, "error %d:%d: %s\n", d.Line, d.Column, d.Message)
	}
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "writing tree")
}

func writeNodeText(sb *strings.Builder, n *Node, label string, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(label)
	sb.WriteString(n.Kind)
	if n.Name != "" {
		sb.WriteByte(' ')
		sb.WriteString(n.Name)
	}
	switch v := n.Value.(type) {
	case nil:
	case string:
		fmt.Fprintf(sb, " %q", v)
	default:
		fmt.Fprintf(sb, " %v", v)
	}
	fmt.Fprintf(sb, " @%d:%d\n", n.Line, n.Column)

	if n.Expression != nil {
		writeNodeText(sb, n.Expression, "", depth+1)
	}
	if n.Init != nil {
		writeNodeText(sb, n.Init, "= ", depth+1)
	}
	if n.Function != nil {
		writeNodeText(sb, n.Function, "fn: ", depth+1)
		for _, a := range n.Arguments {
			writeNodeText(sb, a, "arg: ", depth+1)
		}
	}
}

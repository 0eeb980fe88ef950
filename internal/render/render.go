// Package render writes published constants in human- and machine-readable
// formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/aeroconst/internal/catalog"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatHCL}
}

// ParseFormat converts a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (expected one of: text, json, yaml, hcl)", ErrUnknownFormat, s)
}

// Entries writes entries published on class in the given format.
func Entries(w io.Writer, format Format, class string, entries []catalog.Entry) error {
	switch format {
	case FormatText:
		return writeText(w, class, entries)
	case FormatJSON:
		return writeJSON(w, class, entries)
	case FormatYAML:
		return writeYAML(w, class, entries)
	case FormatHCL:
		return writeHCL(w, class, entries)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func ctyValue(v catalog.Value) cty.Value {
	if s, ok := v.Text(); ok {
		return cty.StringVal(s)
	}
	i, _ := v.Int()
	return cty.NumberIntVal(i)
}

func writeText(w io.Writer, class string, entries []catalog.Entry) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", strings.ToUpper(class))
	for _, e := range entries {
		source := e.Symbol
		if source == "" {
			source = "-"
		}
		fmt.Fprintf(&sb, "  %-28s %-7s %-36s %s\n", e.Name, e.Value.Kind(), source, e.Value)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeJSON(w io.Writer, class string, entries []catalog.Entry) error {
	attrs := make(map[string]cty.Value, len(entries))
	for _, e := range entries {
		attrs[e.Name] = ctyValue(e.Value)
	}
	inner := cty.EmptyObjectVal
	if len(attrs) > 0 {
		inner = cty.ObjectVal(attrs)
	}
	obj := cty.ObjectVal(map[string]cty.Value{class: inner})

	out, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

type yamlEntry struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Symbol string `yaml:"symbol,omitempty"`
	Value  any    `yaml:"value"`
}

type yamlDoc struct {
	Class     string      `yaml:"class"`
	Constants []yamlEntry `yaml:"constants"`
}

func writeYAML(w io.Writer, class string, entries []catalog.Entry) error {
	doc := yamlDoc{Class: class, Constants: make([]yamlEntry, 0, len(entries))}
	for _, e := range entries {
		doc.Constants = append(doc.Constants, yamlEntry{
			Name:   e.Name,
			Kind:   e.Value.Kind().String(),
			Symbol: e.Symbol,
			Value:  e.Value.Interface(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func writeHCL(w io.Writer, class string, entries []catalog.Entry) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body().AppendNewBlock("class", []string{class}).Body()
	for _, e := range entries {
		body.SetAttributeValue(e.Name, ctyValue(e.Value))
	}
	_, err := w.Write(hclwrite.Format(f.Bytes()))
	return err
}

// Value writes a single evaluated value. Text output prints strings and
// numbers bare and falls back to JSON for everything else. YAML and HCL
// output go through yaml.v3 and hclwrite.
func Value(w io.Writer, format Format, v cty.Value) error {
	if !v.IsWhollyKnown() {
		return errors.New("value is not known")
	}
	if format == FormatText && !v.IsNull() {
		switch {
		case v.Type().Equals(cty.String):
			_, err := fmt.Fprintln(w, v.AsString())
			return err
		case v.Type().Equals(cty.Number):
			_, err := fmt.Fprintln(w, v.AsBigFloat().Text('f', -1))
			return err
		case v.Type().Equals(cty.Bool):
			_, err := fmt.Fprintln(w, v.True())
			return err
		}
	}

	switch format {
	case FormatText, FormatJSON, FormatYAML, FormatHCL:
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	if format == FormatHCL {
		_, err := fmt.Fprintf(w, "%s\n", hclwrite.Format(hclwrite.TokensForValue(v).Bytes()))
		return err
	}

	out, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	if format == FormatYAML {
		return jsonToYAML(w, out)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// jsonToYAML re-encodes a JSON document as block-style YAML. JSON is valid
// YAML, so the document is decoded into a node tree with yaml.v3 and its
// flow and quoting styles are cleared before encoding.
func jsonToYAML(w io.Writer, doc []byte) error {
	var node yaml.Node
	if err := yaml.Unmarshal(doc, &node); err != nil {
		return fmt.Errorf("failed to decode value: %w", err)
	}
	clearStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

package main

// Output formatters for resolved connection properties.

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/databendcloud/databend-props/internal/connprops"
	"github.com/databendcloud/databend-props/internal/parser"
)

// OutputFormat selects how a report is printed.
type OutputFormat string

const (
	FormatTable OutputFormat = "TABLE"
	FormatYAML  OutputFormat = "YAML"
	FormatJSON  OutputFormat = "JSON"
)

var formatParser = parser.NewEnumParser(map[string]OutputFormat{
	string(FormatTable): FormatTable,
	string(FormatYAML):  FormatYAML,
	string(FormatJSON):  FormatJSON,
})

// Source tells where a property value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceDSN     Source = "dsn"
	SourceSet     Source = "set"
	SourceUnset   Source = "unset"
)

type propertyRow struct {
	Key    string `json:"key" yaml:"key"`
	Type   string `json:"type" yaml:"type"`
	Value  string `json:"value" yaml:"value"`
	Source Source `json:"source" yaml:"source"`
}

type report struct {
	Address    string        `json:"address,omitempty" yaml:"address,omitempty"`
	Properties []propertyRow `json:"properties" yaml:"properties"`
	Ignored    []string      `json:"ignored,omitempty" yaml:"ignored,omitempty"`
}

// buildReport lists every registered property in declaration order.
func buildReport(vals *connprops.Values, sources map[string]Source, showSensitive bool) report {
	var rep report
	for _, p := range connprops.AllProperties() {
		row := propertyRow{Key: p.Key(), Type: p.Type(), Source: SourceUnset}
		if raw, ok := vals.Raw(p.Key()); ok {
			row.Value = raw
			if !showSensitive {
				row.Value = connprops.MaskedValue(p, raw)
			}
			row.Source = SourceDefault
			if src, ok := sources[p.Key()]; ok && vals.Explicit(p.Key()) {
				row.Source = src
			}
		}
		rep.Properties = append(rep.Properties, row)
	}
	rep.Ignored = vals.Ignored()
	return rep
}

// defaultsReport lists only the properties that declare a default.
func defaultsReport() report {
	var rep report
	for _, p := range connprops.AllProperties() {
		if def, ok := p.Default(); ok {
			rep.Properties = append(rep.Properties, propertyRow{
				Key:    p.Key(),
				Type:   p.Type(),
				Value:  def,
				Source: SourceDefault,
			})
		}
	}
	return rep
}

func writeReport(out io.Writer, format OutputFormat, rep report) error {
	switch format {
	case FormatYAML:
		return yaml.NewEncoder(out, yaml.UseJSONMarshaler()).Encode(rep)
	case FormatJSON:
		return yaml.NewEncoder(out, yaml.JSON(), yaml.UseJSONMarshaler()).Encode(rep)
	default:
		return writeTable(out, rep)
	}
}

// writeTable renders to a buffer first so nothing is written on error.
func writeTable(out io.Writer, rep report) error {
	var tableBuf strings.Builder
	table := tablewriter.NewTable(&tableBuf,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	table.Header([]string{"Key", "Type", "Value", "Source"})
	for _, row := range rep.Properties {
		if err := table.Append([]string{row.Key, row.Type, row.Value, string(row.Source)}); err != nil {
			return fmt.Errorf("tablewriter.Table.Append() failed: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("tablewriter.Table.Render() failed: %w", err)
	}

	if rep.Address != "" {
		if _, err := fmt.Fprintf(out, "Address: %s\n", rep.Address); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out, strings.TrimSpace(tableBuf.String())); err != nil {
		return err
	}
	if len(rep.Ignored) > 0 {
		if _, err := fmt.Fprintf(out, "Ignored: %s\n", strings.Join(rep.Ignored, ", ")); err != nil {
			return err
		}
	}
	return nil
}

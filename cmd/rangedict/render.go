// FILE: lixenwraith/ranged/cmd/rangedict/render.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/lixenwraith/ranged"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

// row is one printed range. Values holds a single "value" entry when one key
// is selected, and one entry per key otherwise.
type row struct {
	Start  int            `json:"start" yaml:"start"`
	Stop   int            `json:"stop" yaml:"stop"`
	Values map[string]any `json:"values" yaml:"values"`
}

func render(w io.Writer, dict *ranged.Dictionary[any], output Output) error {
	columns, rows, err := collectRows(dict, output.Key)
	if err != nil {
		return err
	}

	switch output.Format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case formatTable:
		return renderTable(w, columns, rows)
	}
	return fmt.Errorf("unknown output format %q", output.Format)
}

// collectRows lists the ranges of key, or the merged ranges of every key
// when key is empty, along with the value columns to print.
func collectRows(dict *ranged.Dictionary[any], key string) ([]string, []row, error) {
	if key != "" {
		ranges, err := dict.Ranges(key)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]row, len(ranges))
		for i, r := range ranges {
			rows[i] = row{Start: r.Start, Stop: r.Stop, Values: map[string]any{"value": r.Value}}
		}
		return []string{"value"}, rows, nil
	}

	merged := dict.AllRanges()
	rows := make([]row, len(merged))
	for i, r := range merged {
		values := make(map[string]any, len(r.Values))
		for k, v := range r.Values {
			values[k] = v
		}
		rows[i] = row{Start: r.Start, Stop: r.Stop, Values: values}
	}
	return dict.Keys(), rows, nil
}

func renderTable(w io.Writer, columns []string, rows []row) error {
	headers := []any{"Start", "Stop"}
	for _, c := range columns {
		headers = append(headers, c)
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers...)
	for _, r := range rows {
		cells := []string{strconv.Itoa(r.Start), strconv.Itoa(r.Stop)}
		for _, c := range columns {
			cells = append(cells, fmt.Sprint(r.Values[c]))
		}
		if err := table.Append(cells); err != nil {
			return err
		}
	}
	return table.Render()
}

package cmds

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/telton/console/table"
)

// readRows decodes table rows from r. YAML (and therefore JSON) input is
// a sequence whose items are either sequences of cells or mappings; all
// mappings must share their keys in the same order.
func readRows(r io.Reader, format string) ([]table.Row, error) {
	switch format {
	case "csv":
		return readCSV(r)
	default:
		return readYAML(r)
	}
}

func readYAML(r io.Reader) ([]table.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var items []any
	if err := yaml.UnmarshalWithOptions(data, &items, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}

	var (
		rows  []table.Row
		keyed []table.KeyedRow
	)
	for i, item := range items {
		switch v := item.(type) {
		case []any:
			rows = append(rows, table.Row(v))
		case yaml.MapSlice:
			kr := table.KeyedRow{}
			for _, mi := range v {
				kr.Keys = append(kr.Keys, fmt.Sprint(mi.Key))
				kr.Values = append(kr.Values, mi.Value)
			}
			keyed = append(keyed, kr)
		default:
			return nil, fmt.Errorf("parse input: row %d is a %T, want a list or a mapping", i, item)
		}
	}

	if len(rows) > 0 && len(keyed) > 0 {
		return nil, fmt.Errorf("parse input: rows mix lists and mappings")
	}
	if len(keyed) > 0 {
		return table.FromKeyed(keyed)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([]table.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		row := make(table.Row, len(rec))
		for i, field := range rec {
			row[i] = field
		}
		rows = append(rows, row)
	}
	return rows, nil
}

package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Row is one table row addressed by column position.
type Row []any

// KeyedRow is one table row addressed by column name. Keys and Values are
// parallel slices.
type KeyedRow struct {
	Keys   []string
	Values []any
}

// FromKeyed converts keyed rows into positional rows. Every row must carry
// the same keys in the same order as the first one.
func FromKeyed(rows []KeyedRow) ([]Row, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	keys := rows[0].Keys
	out := make([]Row, 0, len(rows))
	for i, r := range rows {
		if len(r.Keys) != len(r.Values) {
			return nil, fmt.Errorf("%w: row %d has %d keys and %d values", ErrRaggedRows, i, len(r.Keys), len(r.Values))
		}
		if !slices.Equal(keys, r.Keys) {
			return nil, fmt.Errorf("%w: row %d has columns [%s], want [%s]",
				ErrRaggedRows, i, strings.Join(r.Keys, ", "), strings.Join(keys, ", "))
		}
		out = append(out, Row(r.Values))
	}

	return out, nil
}

// Cell converts a value to the string it is displayed as.
func Cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = Cell(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

package grid

import (
	"fmt"
	"strings"
	"time"
)

// Direction is a column's sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ColumnKind distinguishes ordinary data columns from command columns
// (edit/delete buttons and the like), which never sort or filter.
type ColumnKind int

const (
	KindOrdinary ColumnKind = iota
	KindCommand
)

// Filter is a column's current filter state. An empty Search disables
// filtering on the column.
type Filter struct {
	Search string
	Method FilterMethod
}

// Column describes one grid column: identity, capability flags, current
// sort/filter state and the value accessors for the item type. Identity
// is immutable after registration; Direction and Filter are mutated by
// the grid as the user interacts with it.
type Column[T any] struct {
	ID         string
	Field      string
	Title      string
	Sortable   bool
	Editable   bool
	Filterable bool
	Kind       ColumnKind
	Direction  Direction
	Filter     Filter

	GetValue func(item T) any
	SetValue func(item T, value any)
}

// Text returns the stringified cell value for an item, as used for
// filtering and display.
func (c *Column[T]) Text(item T) string {
	if c.GetValue == nil {
		return ""
	}
	v := c.GetValue(item)
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// compareValues orders two accessor values. Numeric types compare
// numerically, strings case-insensitively, everything else by its
// stringified form.
func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			return at.Compare(bt)
		}
	}
	as, bs := strings.ToLower(fmt.Sprintf("%v", a)), strings.ToLower(fmt.Sprintf("%v", b))
	return strings.Compare(as, bs)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

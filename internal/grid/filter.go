package grid

import (
	"sort"
	"strings"
)

// FilterMethod is the comparison applied between a cell's stringified
// value and a column's filter text. All comparisons are case-insensitive.
type FilterMethod int

const (
	Contains FilterMethod = iota
	StartsWith
	EndsWith
	Equals
	NotEquals
)

// String returns the method name.
func (m FilterMethod) String() string {
	switch m {
	case StartsWith:
		return "starts-with"
	case EndsWith:
		return "ends-with"
	case Equals:
		return "equals"
	case NotEquals:
		return "not-equals"
	default:
		return "contains"
	}
}

// Match reports whether value satisfies the filter search text under
// this method. An empty search matches everything.
func (m FilterMethod) Match(value, search string) bool {
	if search == "" {
		return true
	}
	v := strings.ToLower(value)
	s := strings.ToLower(search)
	switch m {
	case StartsWith:
		return strings.HasPrefix(v, s)
	case EndsWith:
		return strings.HasSuffix(v, s)
	case Equals:
		return v == s
	case NotEquals:
		return v != s
	default:
		return strings.Contains(v, s)
	}
}

// computeFiltered derives the filtered (and, in local mode, sorted)
// sequence from the raw items. In remote mode the loader has already
// applied sort/filter server-side, so items pass through unchanged.
// The result is fully materialized so counts never force a recompute.
func computeFiltered[T any](items []T, columns []*Column[T], sortCol *Column[T], remote bool) []T {
	if remote {
		return items
	}

	ordered := make([]T, len(items))
	copy(ordered, items)

	if sortCol != nil && sortCol.Sortable && sortCol.GetValue != nil {
		desc := sortCol.Direction == Descending
		sort.SliceStable(ordered, func(i, j int) bool {
			c := compareValues(sortCol.GetValue(ordered[i]), sortCol.GetValue(ordered[j]))
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	active := activeFilters(columns)
	if len(active) == 0 {
		return ordered
	}

	kept := make([]T, 0, len(ordered))
	for _, item := range ordered {
		if matchesAll(item, active) {
			kept = append(kept, item)
		}
	}
	return kept
}

// activeFilters returns the non-command columns carrying filter text.
func activeFilters[T any](columns []*Column[T]) []*Column[T] {
	var active []*Column[T]
	for _, c := range columns {
		if c.Kind == KindCommand {
			continue
		}
		if c.Filter.Search != "" {
			active = append(active, c)
		}
	}
	return active
}

// matchesAll composes the active column filters with logical AND.
func matchesAll[T any](item T, active []*Column[T]) bool {
	for _, c := range active {
		if !c.Filter.Method.Match(c.Text(item), c.Filter.Search) {
			return false
		}
	}
	return true
}

package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Filter selects which tasks are visible.
type Filter string

const (
	// FilterAll shows every task.
	FilterAll Filter = "all"
	// FilterActive shows tasks that are not completed.
	FilterActive Filter = "active"
	// FilterCompleted shows completed tasks.
	FilterCompleted Filter = "completed"
)

// Filters returns the filters in tab order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// ParseFilter converts a user-supplied name into a Filter.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidFilter, "unknown filter"), "filter", s)
	}
}

// Includes reports whether t is visible under f.
// Unknown filters include nothing.
func (f Filter) Includes(t Task) bool {
	switch f {
	case FilterAll:
		return true
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return false
	}
}

// Next returns the filter after f in tab order, wrapping around.
func (f Filter) Next() Filter {
	return f.shift(1)
}

// Prev returns the filter before f in tab order, wrapping around.
func (f Filter) Prev() Filter {
	return f.shift(-1)
}

func (f Filter) shift(delta int) Filter {
	filters := Filters()
	for i, candidate := range filters {
		if candidate == f {
			n := len(filters)
			return filters[((i+delta)%n+n)%n]
		}
	}
	return FilterAll
}

// String returns the filter name.
func (f Filter) String() string {
	return string(f)
}

package browser

import "cmp"

// Column describes how one table column is displayed and ordered.
type Column[T any] struct {
	Title   string
	Cell    func(T) string
	Compare func(a, b T) int
	// Hazard switches the sort prompt to hazardous-first / safe-first. Compare must
	// order safe rows before hazardous ones.
	Hazard bool
}

type Dataset[T any] struct {
	Title   string
	Columns []Column[T]
	Rows    []T
}

func (d Dataset[T]) Headers() []string {
	headers := make([]string, len(d.Columns))
	for i, column := range d.Columns {
		headers[i] = column.Title
	}
	return headers
}

func (d Dataset[T]) Cells(rows []T) [][]string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, len(d.Columns))
		for j, column := range d.Columns {
			line[j] = column.Cell(row)
		}
		cells[i] = line
	}
	return cells
}

// By builds a comparator from a key accessor.
func By[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ByBool orders false before true.
func ByBool[T any](key func(T) bool) func(a, b T) int {
	return func(a, b T) int {
		switch ka, kb := key(a), key(b); {
		case ka == kb:
			return 0
		case !ka:
			return -1
		default:
			return 1
		}
	}
}

package tabular

import (
	"strconv"
	"strings"

	"claimstat/domain/core"
)

// Table is an immutable in-memory view of one loaded dataset.
// Cells are kept as the raw strings read from disk; typed access goes
// through the column accessors, which fail fast on coercion problems.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a table from a header row and data rows.
func NewTable(name string, headers []string, rows [][]string) (*Table, error) {
	if len(headers) == 0 {
		return nil, core.NewDataFormatError(name, "missing header row")
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		headers[i] = h
		if h == "" {
			return nil, core.NewDataFormatError(name, "blank column name in header")
		}
		if _, dup := index[h]; dup {
			return nil, core.NewDataFormatError(name, "duplicate column name: "+h)
		}
		index[h] = i
	}
	for r, row := range rows {
		if len(row) != len(headers) {
			return nil, core.NewDataFormatError(name, "row "+strconv.Itoa(r+1)+" has wrong column count")
		}
	}
	return &Table{Name: name, Headers: headers, Rows: rows, index: index}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// NumericColumn returns the named column coerced to float64.
// Any cell that fails to parse is a data-format error; the loader does not
// silently drop values.
func (t *Table) NumericColumn(name string) ([]float64, error) {
	col, ok := t.index[name]
	if !ok {
		return nil, core.NewColumnError(name, t.Name)
	}
	values := make([]float64, 0, len(t.Rows))
	for r, row := range t.Rows {
		cell := strings.TrimSpace(row[col])
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, core.NewDataFormatError(t.Name,
				"non-numeric value "+strconv.Quote(cell)+" in column "+name+", row "+strconv.Itoa(r+1))
		}
		values = append(values, v)
	}
	return values, nil
}

// StringColumn returns the named column as trimmed strings.
func (t *Table) StringColumn(name string) ([]string, error) {
	col, ok := t.index[name]
	if !ok {
		return nil, core.NewColumnError(name, t.Name)
	}
	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = strings.TrimSpace(row[col])
	}
	return values, nil
}

// GroupBy splits a numeric column into groups keyed by a categorical column.
// Group order follows first appearance in the table.
func (t *Table) GroupBy(catColumn, numColumn string) ([]string, [][]float64, error) {
	cats, err := t.StringColumn(catColumn)
	if err != nil {
		return nil, nil, err
	}
	nums, err := t.NumericColumn(numColumn)
	if err != nil {
		return nil, nil, err
	}

	var keys []string
	groups := make(map[string][]float64)
	for i, c := range cats {
		if _, seen := groups[c]; !seen {
			keys = append(keys, c)
		}
		groups[c] = append(groups[c], nums[i])
	}

	out := make([][]float64, len(keys))
	for i, k := range keys {
		out[i] = groups[k]
	}
	return keys, out, nil
}

// RequireColumns verifies the table carries exactly the expected schema.
func (t *Table) RequireColumns(names ...string) error {
	for _, n := range names {
		if !t.HasColumn(n) {
			return core.NewColumnError(n, t.Name)
		}
	}
	return nil
}

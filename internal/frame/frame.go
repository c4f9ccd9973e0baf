package frame

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Frame is a read-only view over a gota DataFrame.
// Declared holds column types that override the series type gota reports,
// e.g. the INT/TEXT names from a table's meta.json.
type Frame struct {
	df       dataframe.DataFrame
	declared map[string]string
}

// New wraps an already-loaded DataFrame
func New(df dataframe.DataFrame) *Frame {
	return &Frame{df: df}
}

// WithDeclaredTypes returns a copy of the frame that reports the given
// column types from Dtypes instead of the inferred ones
func (f *Frame) WithDeclaredTypes(types map[string]string) *Frame {
	declared := make(map[string]string, len(types))
	for name, t := range types {
		declared[name] = t
	}
	return &Frame{df: f.df, declared: declared}
}

// Dims returns the row and column counts
func (f *Frame) Dims() (rows, cols int) {
	return f.df.Dims()
}

// Head returns the first n rows in their original order.
// n larger than the row count yields every row. A negative n yields all rows
// except the last |n|.
func (f *Frame) Head(n int) (fmt.Stringer, error) {
	if f.df.Err != nil {
		return nil, f.df.Err
	}

	total, ncols := f.df.Dims()
	k := headLen(total, n)

	if ncols == 0 || k == total {
		return &Frame{df: f.df, declared: f.declared}, nil
	}
	if k == 0 {
		empty, err := f.empty()
		if err != nil {
			return nil, err
		}
		return empty, nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	sub := f.df.Subset(idx)
	if sub.Err != nil {
		return nil, fmt.Errorf("head %d: %w", n, sub.Err)
	}
	return &Frame{df: sub, declared: f.declared}, nil
}

// empty builds a zero-row frame with the same columns and series types
func (f *Frame) empty() (*Frame, error) {
	cols := make([]series.Series, 0, f.df.Ncol())
	for _, name := range f.df.Names() {
		col := f.df.Col(name)
		cols = append(cols, series.New([]string{}, col.Type(), name))
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return nil, fmt.Errorf("head 0: %w", df.Err)
	}
	return &Frame{df: df, declared: f.declared}, nil
}

func headLen(total, n int) int {
	if n < 0 {
		n = total + n
	}
	return max(0, min(n, total))
}

// Dtypes returns the column name to type mapping in column order
func (f *Frame) Dtypes() (fmt.Stringer, error) {
	ct, err := f.ColumnTypes()
	if err != nil {
		return nil, err
	}
	return ct, nil
}

// ColumnTypes is Dtypes with its concrete type
func (f *Frame) ColumnTypes() (ColumnTypes, error) {
	if f.df.Err != nil {
		return nil, f.df.Err
	}

	names := f.df.Names()
	types := f.df.Types()

	out := make(ColumnTypes, len(names))
	for i, name := range names {
		t := string(types[i])
		if d, ok := f.declared[name]; ok && d != "" {
			t = d
		}
		out[i] = ColumnType{Name: name, Type: t}
	}
	return out, nil
}

// String renders the frame as an index column followed by one column per
// series, one line per row. Every requested row is shown; gota's own
// String() cuts off after 10 rows.
func (f *Frame) String() string {
	if f.df.Err != nil {
		return fmt.Sprintf("Error: %v", f.df.Err)
	}
	if f.df.Ncol() == 0 {
		return "Empty DataFrame"
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	records := f.df.Records()

	// Header
	fmt.Fprintf(tw, "\t%s\n", joinCells(records[0]))

	// Rows
	for i, rec := range records[1:] {
		fmt.Fprintf(tw, "%d\t%s\n", i, joinCells(rec))
	}
	tw.Flush()

	return b.String()
}

// cellEscaper keeps one cell on one tabwriter cell: line breaks and cell
// separators inside values are written as escape sequences
var cellEscaper = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\v", `\v`,
	"\f", `\f`,
)

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

func joinCells(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = escapeCell(c)
	}
	return strings.Join(escaped, "\t")
}

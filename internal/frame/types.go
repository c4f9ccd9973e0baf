package frame

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// ColumnType pairs a column name with its type
type ColumnType struct {
	Name string
	Type string
}

// ColumnTypes is the ordered column name to type mapping of a frame
type ColumnTypes []ColumnType

// String renders one "name    type" line per column
func (c ColumnTypes) String() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 4, ' ', 0)
	for _, ct := range c {
		fmt.Fprintf(tw, "%s\t%s\n", escapeCell(ct.Name), escapeCell(ct.Type))
	}
	tw.Flush()
	return b.String()
}

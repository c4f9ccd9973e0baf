// Package summary prints a quick overview of a tabular dataset: its shape,
// a preview of the first rows and the type of every column.
package summary

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Dataset is the read-only view the printer needs.
// Rendering of the preview and of the type mapping belongs to the dataset.
type Dataset interface {
	Dims() (rows, cols int)
	Head(n int) (fmt.Stringer, error)
	Dtypes() (fmt.Stringer, error)
}

// Print writes the summary of ds to standard output
func Print(ds Dataset, n int) error {
	return Fprint(os.Stdout, ds, n)
}

// Fprint writes the shape, the first n rows and the column types of ds to w.
// Each section header is written before its value is read. Errors from the
// dataset or the writer are returned unchanged; anything written before the
// failure stays written.
func Fprint(w io.Writer, ds Dataset, n int) error {
	rows, cols := ds.Dims()
	if _, err := fmt.Fprintf(w, "Shape:\n(%d Rows, %d Columns) \n\n", rows, cols); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "First %d rows:\n", n); err != nil {
		return err
	}
	head, err := ds.Head(n)
	if err != nil {
		return err
	}
	if err := writeBlock(w, head); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\nColumn types:\n"); err != nil {
		return err
	}
	dtypes, err := ds.Dtypes()
	if err != nil {
		return err
	}
	return writeBlock(w, dtypes)
}

// writeBlock writes s followed by exactly one newline
func writeBlock(w io.Writer, s fmt.Stringer) error {
	text := strings.TrimRight(s.String(), "\n")
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

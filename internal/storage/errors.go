package storage

import (
	"fmt"
	"strings"
)

// LoadError reports a dataset that could not be read from disk
type LoadError struct {
	Path   string // file or directory being loaded
	Format string // "csv", "json", "table", "database"
	Reason string // human-readable explanation (optional)
	Err    error  // underlying cause (may be nil)
}

func (e *LoadError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("load %s", e.Path))

	if e.Format != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Format))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, " - ")
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

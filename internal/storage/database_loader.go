package storage

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// LoadDatabase loads every table of a database directory.
// Tables listed in meta.json come first in that order, then any other table
// directory in name order.
func LoadDatabase(dbPath string, logger *slog.Logger) ([]*Dataset, error) {
	metaPath := filepath.Join(dbPath, "meta.json")

	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, &LoadError{Path: dbPath, Format: FormatDatabase, Reason: "failed to read database meta", Err: err}
	}

	var meta DatabaseMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, &LoadError{Path: dbPath, Format: FormatDatabase, Reason: "failed to parse database meta", Err: err}
	}

	entries, err := os.ReadDir(dbPath)
	if err != nil {
		return nil, &LoadError{Path: dbPath, Format: FormatDatabase, Reason: "failed to read database directory", Err: err}
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)

	order := make([]string, 0, len(dirs))
	seen := make(map[string]bool, len(dirs))
	for _, name := range meta.Tables {
		if !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	for _, name := range dirs {
		if !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}

	tables := make([]*Dataset, 0, len(order))
	for _, tableName := range order {
		table, err := LoadTable(filepath.Join(dbPath, tableName), logger)
		if err != nil {
			return nil, &LoadError{Path: dbPath, Format: FormatDatabase, Reason: "failed to load table " + tableName, Err: err}
		}
		tables = append(tables, table)
	}

	logger.Info("database loaded",
		slog.String("name", meta.Name),
		slog.String("path", dbPath),
		slog.Int("table_count", len(tables)),
	)

	return tables, nil
}

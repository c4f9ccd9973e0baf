package storage

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/leengari/dfsummary/internal/frame"
)

const (
	FormatCSV      = "csv"
	FormatTSV      = "tsv"
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatDatabase = "database"
)

// Dataset is a named frame loaded from disk
type Dataset struct {
	Name  string
	Path  string
	Frame *frame.Frame
}

// Open loads every dataset found at path.
// Files are read by extension (.csv, .tsv, .json). A directory is either a
// table (meta.json with columns) or a database (meta.json + table directories).
func Open(path string, logger *slog.Logger) ([]*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if info.IsDir() {
		isTable, err := isTableDir(path)
		if err != nil {
			return nil, err
		}
		if isTable {
			ds, err := LoadTable(path, logger)
			if err != nil {
				return nil, err
			}
			return []*Dataset{ds}, nil
		}
		return LoadDatabase(path, logger)
	}

	ds, err := LoadFile(path, logger)
	if err != nil {
		return nil, err
	}
	return []*Dataset{ds}, nil
}

// LoadFile reads a single delimited or JSON file, letting gota infer the
// column types
func LoadFile(path string, logger *slog.Logger) (*Dataset, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Format: format, Err: err}
	}
	defer f.Close()

	var df dataframe.DataFrame
	switch format {
	case FormatCSV:
		df = dataframe.ReadCSV(f)
	case FormatTSV:
		df = dataframe.ReadCSV(f, dataframe.WithDelimiter('\t'))
	case FormatJSON:
		df = dataframe.ReadJSON(f)
	default:
		return nil, &LoadError{Path: path, Format: format, Reason: "unsupported file format"}
	}
	if df.Err != nil {
		return nil, &LoadError{Path: path, Format: format, Err: df.Err}
	}

	rows, cols := df.Dims()
	logger.Info("dataset loaded",
		slog.String("path", path),
		slog.String("format", format),
		slog.Int("rows", rows),
		slog.Int("columns", cols),
	)

	return &Dataset{
		Name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:  path,
		Frame: frame.New(df),
	}, nil
}

// isTableDir reports whether the meta.json in dir describes a table
func isTableDir(dir string) (bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, "meta.json"))
	if err != nil {
		return false, &LoadError{Path: dir, Reason: "directory has no meta.json", Err: err}
	}

	var probe struct {
		Columns json.RawMessage `json:"columns"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false, &LoadError{Path: dir, Reason: "failed to parse meta.json", Err: err}
	}
	return len(probe.Columns) > 0 && string(probe.Columns) != "null", nil
}

package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/leengari/dfsummary/internal/frame"
)

// LoadTable reads a table directory (meta.json + optional data.json).
// Columns keep the order and the declared types from meta.json.
func LoadTable(path string, logger *slog.Logger) (*Dataset, error) {
	metaPath := filepath.Join(path, "meta.json")
	dataPath := filepath.Join(path, "data.json")

	metaBytes, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, &LoadError{Path: path, Format: FormatTable, Reason: "failed to read table meta", Err: err}
	}

	var meta TableMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, &LoadError{Path: path, Format: FormatTable, Reason: "failed to parse table meta", Err: err}
	}
	if len(meta.Columns) == 0 {
		return nil, &LoadError{Path: path, Format: FormatTable, Reason: "table has no columns"}
	}

	rows := []map[string]interface{}{}
	dataBytes, err := os.ReadFile(dataPath)
	switch {
	case err == nil:
		dec := json.NewDecoder(bytes.NewReader(dataBytes))
		dec.UseNumber()
		if err := dec.Decode(&rows); err != nil {
			return nil, &LoadError{Path: path, Format: FormatTable, Reason: "failed to parse table data", Err: err}
		}
	case errors.Is(err, fs.ErrNotExist):
		// table without rows
	default:
		return nil, &LoadError{Path: path, Format: FormatTable, Reason: "failed to read table data", Err: err}
	}

	cols := make([]series.Series, 0, len(meta.Columns))
	declared := make(map[string]string, len(meta.Columns))
	for _, c := range meta.Columns {
		typ := seriesType(c.Type)
		values := make([]string, len(rows))
		for i, row := range rows {
			values[i] = cellString(row[c.Name])
			if !parsesAs(values[i], typ) {
				logger.Warn("cell does not match declared type, reading it as NaN",
					slog.String("path", path),
					slog.String("column", c.Name),
					slog.String("type", c.Type),
					slog.Int("row", i),
					slog.String("value", values[i]),
				)
			}
		}
		cols = append(cols, series.New(values, typ, c.Name))
		declared[c.Name] = strings.ToUpper(c.Type)
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return nil, &LoadError{Path: path, Format: FormatTable, Err: df.Err}
	}

	name := meta.Name
	if name == "" {
		name = filepath.Base(path)
	}

	ds := &Dataset{
		Name:  name,
		Path:  path,
		Frame: frame.New(df).WithDeclaredTypes(declared),
	}
	logger.Info("table loaded",
		slog.String("table", ds.Name),
		slog.Int("rows", len(rows)),
		slog.Int("columns", len(cols)),
	)

	return ds, nil
}

// seriesType maps a declared column type onto a gota series type.
// DATE, TIME and EMAIL are stored as text.
func seriesType(declared string) series.Type {
	switch strings.ToUpper(declared) {
	case "INT":
		return series.Int
	case "FLOAT":
		return series.Float
	case "BOOL":
		return series.Bool
	default:
		return series.String
	}
}

// cellString converts a decoded JSON value into the text gota parses.
// Missing values and nulls become NaN.
func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NaN"
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "NaN"
		}
		return string(b)
	}
}

// parsesAs reports whether gota will read s as a value of t rather than NaN
func parsesAs(s string, t series.Type) bool {
	if s == "NaN" {
		return true
	}
	var err error
	switch t {
	case series.Int:
		_, err = strconv.Atoi(s)
	case series.Float:
		_, err = strconv.ParseFloat(s, 64)
	case series.Bool:
		switch strings.ToLower(s) {
		case "true", "t", "1", "false", "f", "0":
		default:
			return false
		}
	}
	return err == nil
}

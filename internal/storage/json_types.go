package storage

// DatabaseMeta is the meta.json at the root of a database directory
type DatabaseMeta struct {
	Name   string   `json:"name"`
	Tables []string `json:"tables,omitempty"`
}

// TableMeta is the meta.json inside a table directory.
// Constraint flags (primary_key, unique, ...) may be present and are ignored.
type TableMeta struct {
	Name    string       `json:"name"`
	Columns []ColumnMeta `json:"columns"`
}

// ColumnMeta is one column entry of a table's meta.json
type ColumnMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

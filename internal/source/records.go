package source

import "strconv"

// Row is one tabular record keyed by column name
type Row map[string]string

// Table is an ordered set of rows sharing the same columns
type Table []Row

// Str returns the column value, or def when absent or empty
func (r Row) Str(key, def string) string {
	if v, ok := r[key]; ok && v != "" {
		return v
	}
	return def
}

// Float returns the column parsed as float64, or def when absent or unparseable
func (r Row) Float(key string, def float64) float64 {
	v, ok := r[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Int returns the column parsed as int, or def when absent or unparseable.
// Fractional values are truncated.
func (r Row) Int(key string, def int) int {
	v, ok := r[key]
	if !ok {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return def
}

// MaxStr returns the lexicographic maximum of a column across all rows.
// ISO dates sort correctly under this ordering.
func (t Table) MaxStr(key string) string {
	max := ""
	for _, row := range t {
		if v := row.Str(key, ""); v > max {
			max = v
		}
	}
	return max
}

// WhereEq selects the rows whose column equals value
func (t Table) WhereEq(key, value string) Table {
	out := Table{}
	for _, row := range t {
		if row.Str(key, "") == value {
			out = append(out, row)
		}
	}
	return out
}

// CountEq counts the rows whose column equals value
func (t Table) CountEq(key, value string) int {
	n := 0
	for _, row := range t {
		if row.Str(key, "") == value {
			n++
		}
	}
	return n
}

// Document is a nested record decoded from JSON
type Document map[string]any

// Section returns a nested object, or an empty document when absent
func (d Document) Section(key string) Document {
	if m, ok := d[key].(map[string]any); ok {
		return Document(m)
	}
	return Document{}
}

// List returns a nested array of objects, or an empty slice when absent
func (d Document) List(key string) []Document {
	items, ok := d[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Document, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Document(m))
		}
	}
	return out
}

// Str returns a string field, or def when absent or not a string
func (d Document) Str(key, def string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return def
}

// Float returns a numeric field as float64, or def. JSON numbers decode as
// float64; numeric strings are parsed for tolerance.
func (d Document) Float(key string, def float64) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// Int returns a numeric field truncated to int, or def
func (d Document) Int(key string, def int) int {
	switch v := d[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

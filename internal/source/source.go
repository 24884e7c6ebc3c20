// Package source implements the domain data reader boundary. Sources are
// flat files keyed by domain and logical name; a missing or malformed
// source always yields an empty result, never an error.
package source

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store fetches tabular and document records per domain
type Store interface {
	Table(domain, name string) Table
	Document(domain, name string) Document
}

// FileStore reads CSV tables and JSON documents from a base directory
type FileStore struct {
	base   string
	logger *zap.Logger
}

// NewFileStore creates a file-backed store rooted at basePath
func NewFileStore(basePath string, logger *zap.Logger) *FileStore {
	return &FileStore{base: basePath, logger: logger}
}

// Table reads a CSV file into rows keyed by header column names
func (s *FileStore) Table(domain, name string) Table {
	path := filepath.Join(s.base, domain, name)

	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("table source unavailable", zap.String("path", path), zap.Error(err))
		return Table{}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		s.logger.Warn("table source unreadable", zap.String("path", path), zap.Error(err))
		return Table{}
	}
	if len(records) < 2 {
		return Table{}
	}

	header := records[0]
	rows := make(Table, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Document reads a JSON file into a nested document
func (s *FileStore) Document(domain, name string) Document {
	path := filepath.Join(s.base, domain, name)

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("document source unavailable", zap.String("path", path), zap.Error(err))
		return Document{}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("document source unreadable", zap.String("path", path), zap.Error(err))
		return Document{}
	}
	return doc
}

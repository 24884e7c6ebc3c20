package aggregation

import (
	"go.uber.org/zap"

	"github.com/finsight/orchestrator/internal/source"
)

// fakeStore serves in-memory tables and documents keyed by domain/name
type fakeStore struct {
	tables map[string]source.Table
	docs   map[string]source.Document
}

func (f *fakeStore) Table(domain, name string) source.Table {
	if t, ok := f.tables[domain+"/"+name]; ok {
		return t
	}
	return source.Table{}
}

func (f *fakeStore) Document(domain, name string) source.Document {
	if d, ok := f.docs[domain+"/"+name]; ok {
		return d
	}
	return source.Document{}
}

func newTestService(store source.Store) Service {
	return NewService(zap.NewNop(), store)
}

func emptyStore() *fakeStore {
	return &fakeStore{tables: map[string]source.Table{}, docs: map[string]source.Document{}}
}

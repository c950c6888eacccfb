// Package memory is an in-memory RecordWriter used for dry runs and tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"kyuyo/internal/core"
	"kyuyo/internal/ledger"
)

type Row struct {
	Payday string
	Item   core.Item
}

type Store struct {
	mu   sync.Mutex
	rows []Row
}

var _ ledger.RecordWriter = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// Append stores the record and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, payday string, it core.Item) (string, error) {
	if payday == "" {
		return "", errors.New("empty payday")
	}
	if it.Name == "" {
		return "", errors.New("empty item name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, Row{Payday: payday, Item: it})
	return fmt.Sprintf("mem:%d", len(s.rows)), nil
}

// Rows returns a copy of everything appended so far.
func (s *Store) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Row(nil), s.rows...)
}

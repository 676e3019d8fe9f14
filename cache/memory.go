package cache

import (
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type memoryKey struct {
	card, w uint64
}

// Memory is a bounded in-memory [Store] with least-recently-used eviction.
// Tables are keyed by their cardinality and root, and hold the longest
// table saved so far.
type Memory struct {
	mu     sync.Mutex
	tables *lru.Cache[memoryKey, []uint64]
	logger logrus.FieldLogger
}

// NewMemory creates a new [Memory] store holding at most size tables.
func NewMemory(size int, opts ...Option) (*Memory, error) {
	tables, err := lru.New[memoryKey, []uint64](size)
	if err != nil {
		return nil, errors.Wrapf(err, "lru.New(%d)", size)
	}
	o := newOptions(opts)
	return &Memory{tables: tables, logger: o.logger}, nil
}

// Load implements [Store].
func (m *Memory) Load(card uint64, n int, w uint64) ([]uint64, bool, error) {
	values, ok := m.tables.Get(memoryKey{card: card, w: w})
	if !ok || len(values) < n {
		m.logger.WithFields(logrus.Fields{"card": card, "n": n, "w": w}).Debug("memory cache miss")
		return nil, false, nil
	}
	return slices.Clone(values[:n]), true, nil
}

// Save implements [Store].
func (m *Memory) Save(card, w uint64, values []uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := memoryKey{card: card, w: w}
	if old, ok := m.tables.Peek(key); ok && len(old) >= len(values) {
		return nil
	}
	m.tables.Add(key, slices.Clone(values))
	return nil
}

// Len returns the number of tables held by the store.
func (m *Memory) Len() int {
	return m.tables.Len()
}

package registry

import (
	"fmt"
	"sync"

	"symbench/internal/domain"
)

// SymbolID is the dense integer identity assigned to a distinct symbol.
// IDs start at 0, grow in first-seen order and never change once assigned.
type SymbolID uint32

// SymbolRegistry is an append-only interning table: symbol text to ID and
// back. It models a table shared by multiple producers, so GetID must be
// atomic even though the benchmark drives it single-threaded: one mutex
// spans the lookup, the reverse-table append and the forward-map insert,
// so no caller can ever observe half of an assignment or race two distinct
// IDs onto the same text.
type SymbolRegistry struct {
	mu      sync.Mutex
	forward map[string]SymbolID
	reverse []string
}

// New creates an empty registry.
func New() *SymbolRegistry {
	return &SymbolRegistry{forward: make(map[string]SymbolID)}
}

// GetID returns the ID assigned to symbol, assigning the next dense ID
// (the current distinct-symbol count) on first sight.
func (r *SymbolRegistry) GetID(symbol string) SymbolID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.forward[symbol]; ok {
		return id
	}
	id := SymbolID(len(r.reverse))
	r.forward[symbol] = id
	r.reverse = append(r.reverse, symbol)
	return id
}

// Symbol returns the text registered under id, or ErrIDOutOfRange if id
// was never assigned. There is no removal: every ID below Size() resolves.
func (r *SymbolRegistry) Symbol(id SymbolID) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if int(id) >= len(r.reverse) {
		return "", fmt.Errorf("id %d, %d registered: %w", id, len(r.reverse), domain.ErrIDOutOfRange)
	}
	return r.reverse[id], nil
}

// Size returns the number of distinct symbols registered so far.
func (r *SymbolRegistry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reverse)
}

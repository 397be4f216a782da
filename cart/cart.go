// Package cart holds the per-session cart ledger: an ordered list of
// computed line items with write-through persistence.
package cart

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Item is one computed line in the cart. ID is generated at add time and is
// the stable removal handle; TotalAmount is the mass computed at add time
// and never retroactively adjusted. UnitPrice is always 0 (pricing is not
// implemented) but is still carried for the total contract.
type Item struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Area        float64 `json:"area"`
	AreaName    string  `json:"areaName"`
	TotalAmount float64 `json:"totalAmount"`
	UnitPrice   float64 `json:"unitPrice"`
}

var (
	ErrNegativeQuantity = errors.New("cart: negative quantity")
	ErrIndexOutOfRange  = errors.New("cart: index out of range")
	ErrItemNotFound     = errors.New("cart: item not found")
)

// Ledger is one session's cart. Mutations are invoked from that session's
// request path only; the mutex covers the occasional overlap of retried
// requests. Every mutation writes through to storage, fire-and-forget.
type Ledger struct {
	mu    sync.Mutex
	key   string
	items []Item
	store Storage
}

// NewLedger builds a ledger for a storage key and loads any persisted
// items. Load failures start an empty cart (logged by the storage layer).
func NewLedger(key string, store Storage) *Ledger {
	l := &Ledger{key: key, store: store}
	if store != nil {
		if items, err := store.Load(key); err == nil {
			l.items = items
		}
	}
	return l
}

// Add appends an item, assigning its ID. Negative quantities are rejected.
func (l *Ledger) Add(item Item) (Item, error) {
	if item.Quantity < 0 {
		return Item{}, ErrNegativeQuantity
	}
	item.ID = uuid.NewString()
	l.mu.Lock()
	l.items = append(l.items, item)
	l.persistLocked()
	l.mu.Unlock()
	return item, nil
}

// RemoveAt removes the item at a position in the full flat list.
func (l *Ledger) RemoveAt(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.persistLocked()
	return nil
}

// Remove removes the item with the given stable id.
func (l *Ledger) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if it.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.persistLocked()
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear empties the cart (after order submission).
func (l *Ledger) Clear() {
	l.mu.Lock()
	l.items = nil
	l.persistLocked()
	l.mu.Unlock()
}

// Items returns the cart contents in insertion order.
func (l *Ledger) Items() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the item count.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Total sums quantity × unitPrice over all items. Always 0 while pricing
// is stubbed, still computed for forward compatibility.
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var total float64
	for _, it := range l.items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}

// AreaGroup is the display grouping of items by area name.
type AreaGroup struct {
	AreaName string `json:"areaName"`
	Items    []Item `json:"items"`
}

// GroupByArea groups items by area name, groups in first-seen order. Items
// keep their stable IDs, so removal from a grouped display never needs
// positional back-resolution.
func (l *Ledger) GroupByArea() []AreaGroup {
	l.mu.Lock()
	defer l.mu.Unlock()
	index := make(map[string]int)
	var groups []AreaGroup
	for _, it := range l.items {
		i, ok := index[it.AreaName]
		if !ok {
			i = len(groups)
			index[it.AreaName] = i
			groups = append(groups, AreaGroup{AreaName: it.AreaName})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

func (l *Ledger) persistLocked() {
	if l.store == nil {
		return
	}
	items := make([]Item, len(l.items))
	copy(items, l.items)
	// Best-effort write-through; a crash before it lands loses the
	// mutation. Failure is logged by the storage backend.
	l.store.Save(l.key, items)
}

// Manager hands out one ledger per session id.
type Manager struct {
	mu      sync.Mutex
	store   Storage
	ledgers map[string]*Ledger
}

func NewManager(store Storage) *Manager {
	return &Manager{store: store, ledgers: make(map[string]*Ledger)}
}

// ForSession returns the session's ledger, loading it on first access.
func (m *Manager) ForSession(sessionID string) *Ledger {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.ledgers[sessionID]; ok {
		return l
	}
	l := NewLedger("cart:"+sessionID, m.store)
	m.ledgers[sessionID] = l
	return l
}

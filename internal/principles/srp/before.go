package srp

import (
	"fmt"
	"io"
)

// OrderManager handles items, printing and storage of a single order.
// Any change to the storage format or the printed layout touches it.
type OrderManager struct {
	id    string
	items []Item
	store map[string][]Item
}

func NewOrderManager(id string) *OrderManager {
	return &OrderManager{id: id, store: make(map[string][]Item)}
}

// Bookkeeping.

func (m *OrderManager) CalculateTotalSum() float64 {
	var sum float64
	for _, it := range m.items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func (m *OrderManager) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

func (m *OrderManager) ItemCount() int { return len(m.items) }

func (m *OrderManager) AddItem(it Item) { m.items = append(m.items, it) }

func (m *OrderManager) DeleteItem(name string) {
	for i, it := range m.items {
		if it.Name == name {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return
		}
	}
}

// Presentation.

func (m *OrderManager) PrintOrder(w io.Writer) error {
	for _, it := range m.items {
		if _, err := fmt.Fprintf(w, "%-12s x%d %8.2f\n", it.Name, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%-12s    %8.2f\n", "total", m.CalculateTotalSum())
	return err
}

func (m *OrderManager) ShowOrder(w io.Writer) error {
	_, err := fmt.Fprintf(w, "order %s: %d items, %.2f\n", m.id, m.ItemCount(), m.CalculateTotalSum())
	return err
}

// Persistence.

func (m *OrderManager) Load() error {
	items, ok := m.store[m.id]
	if !ok {
		return fmt.Errorf("load order %s: %w", m.id, ErrOrderNotFound)
	}
	m.items = append([]Item(nil), items...)
	return nil
}

func (m *OrderManager) Save() { m.store[m.id] = m.Items() }

func (m *OrderManager) Update() error {
	if _, ok := m.store[m.id]; !ok {
		return fmt.Errorf("update order %s: %w", m.id, ErrOrderNotFound)
	}
	m.Save()
	return nil
}

func (m *OrderManager) Delete() { delete(m.store, m.id) }

package srp

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrOrderNotFound is returned by OrderRepository when no order has the given ID.
var ErrOrderNotFound = errors.New("order not found")

// Item is one order line.
type Item struct {
	Name     string
	Price    float64
	Quantity int
}

// Order keeps the items of one order and nothing else.
type Order struct {
	ID    string
	items []Item
}

func NewOrder(id string) *Order {
	return &Order{ID: id}
}

// CalculateTotalSum returns the sum of price*quantity over all items.
func (o *Order) CalculateTotalSum() float64 {
	var sum float64
	for _, it := range o.items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) ItemCount() int { return len(o.items) }

func (o *Order) AddItem(it Item) { o.items = append(o.items, it) }

// DeleteItem removes the first item with the given name. Unknown names are ignored.
func (o *Order) DeleteItem(name string) {
	for i, it := range o.items {
		if it.Name == name {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return
		}
	}
}

// OrderRepository stores orders in memory, keyed by ID.
type OrderRepository struct {
	orders map[string][]Item
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string][]Item)}
}

// Load returns a fresh copy of the stored order.
func (r *OrderRepository) Load(id string) (*Order, error) {
	items, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("load order %s: %w", id, ErrOrderNotFound)
	}
	return &Order{ID: id, items: append([]Item(nil), items...)}, nil
}

// Save stores the order, replacing any previous version.
func (r *OrderRepository) Save(o *Order) {
	r.orders[o.ID] = o.Items()
}

// Update replaces an existing order.
func (r *OrderRepository) Update(o *Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return fmt.Errorf("update order %s: %w", o.ID, ErrOrderNotFound)
	}
	r.Save(o)
	return nil
}

func (r *OrderRepository) Delete(id string) error {
	if _, ok := r.orders[id]; !ok {
		return fmt.Errorf("delete order %s: %w", id, ErrOrderNotFound)
	}
	delete(r.orders, id)
	return nil
}

// IDs returns the stored order IDs in sorted order.
func (r *OrderRepository) IDs() []string {
	ids := make([]string, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OrderViewer formats orders for people.
type OrderViewer struct{}

// PrintOrder writes one line per item followed by the total.
func (OrderViewer) PrintOrder(w io.Writer, o *Order) error {
	for _, it := range o.items {
		if _, err := fmt.Fprintf(w, "%-12s x%d %8.2f\n", it.Name, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%-12s    %8.2f\n", "total", o.CalculateTotalSum())
	return err
}

// ShowOrder writes a one-line summary.
func (OrderViewer) ShowOrder(w io.Writer, o *Order) error {
	_, err := fmt.Fprintf(w, "order %s: %d items, %.2f\n", o.ID, o.ItemCount(), o.CalculateTotalSum())
	return err
}

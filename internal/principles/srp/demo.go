package srp

import (
	"fmt"
	"io"
	"strings"
)

// Demonstrate builds an order, stores it, prints it and filters a client list.
func Demonstrate(w io.Writer) error {
	order := NewOrder("A-1")
	order.AddItem(Item{Name: "keyboard", Price: 49.90, Quantity: 1})
	order.AddItem(Item{Name: "cable", Price: 5.50, Quantity: 2})

	repo := NewOrderRepository()
	repo.Save(order)

	loaded, err := repo.Load(order.ID)
	if err != nil {
		return err
	}

	var viewer OrderViewer
	if err := viewer.ShowOrder(w, loaded); err != nil {
		return err
	}
	if err := viewer.PrintOrder(w, loaded); err != nil {
		return err
	}

	clients := []Client{
		{Email: "Ana@Example.com", Status: StatusActive},
		{Email: "bob@example.com", Status: "INACTIVE"},
		{Email: "CARLA@example.com", Status: StatusActive},
	}
	_, err = fmt.Fprintf(w, "active: %s\n", strings.Join(ActiveEmails(clients), ", "))
	return err
}

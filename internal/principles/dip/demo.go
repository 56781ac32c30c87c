package dip

import (
	"context"
	"fmt"
	"io"
)

// Demonstrate sends the same reminder through a MySQL and an Oracle connection.
func Demonstrate(w io.Writer) error {
	ctx := context.Background()
	mysql, oracle := &MySQLConnection{}, &OracleConnection{}
	drivers := []struct {
		label string
		conn  interface {
			DBConnection
			Connects() int
		}
	}{
		{"mysql", mysql},
		{"oracle", oracle},
	}
	for _, d := range drivers {
		reminder := NewPasswordReminder(d.conn)
		if err := reminder.Remind(ctx, "ana@example.com"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-6s reminded %v (connects: %d)\n", d.label, reminder.Sent(), d.conn.Connects()); err != nil {
			return err
		}
	}
	return nil
}

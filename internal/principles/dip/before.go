package dip

import (
	"context"
	"fmt"
)

// CoupledPasswordReminder creates its own connection, so it cannot be reused
// without MySQL.
type CoupledPasswordReminder struct {
	conn *MySQLConnection
	sent []string
}

func NewCoupledPasswordReminder() *CoupledPasswordReminder {
	return &CoupledPasswordReminder{conn: &MySQLConnection{}}
}

func (r *CoupledPasswordReminder) Remind(ctx context.Context, account string) error {
	if err := r.conn.Connect(ctx); err != nil {
		return fmt.Errorf("remind %s: %w", account, err)
	}
	r.sent = append(r.sent, account)
	return nil
}

// ConcretePasswordReminder receives its connection but still depends on the
// MySQL implementation. Switching to Oracle means editing this type.
type ConcretePasswordReminder struct {
	conn *MySQLConnection
	sent []string
}

func NewConcretePasswordReminder(conn *MySQLConnection) *ConcretePasswordReminder {
	return &ConcretePasswordReminder{conn: conn}
}

func (r *ConcretePasswordReminder) Remind(ctx context.Context, account string) error {
	if err := r.conn.Connect(ctx); err != nil {
		return fmt.Errorf("remind %s: %w", account, err)
	}
	r.sent = append(r.sent, account)
	return nil
}

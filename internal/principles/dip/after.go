package dip

import (
	"context"
	"fmt"
)

// DBConnection is the only thing PasswordReminder knows about storage.
type DBConnection interface {
	Connect(ctx context.Context) error
}

// PasswordReminder sends reminders through whatever connection it was given.
type PasswordReminder struct {
	conn DBConnection
	sent []string
}

func NewPasswordReminder(conn DBConnection) *PasswordReminder {
	return &PasswordReminder{conn: conn}
}

// Remind connects and records a reminder for account.
func (r *PasswordReminder) Remind(ctx context.Context, account string) error {
	if err := r.conn.Connect(ctx); err != nil {
		return fmt.Errorf("remind %s: %w", account, err)
	}
	r.sent = append(r.sent, account)
	return nil
}

// Sent returns the accounts reminded so far, oldest first.
func (r *PasswordReminder) Sent() []string {
	return append([]string(nil), r.sent...)
}

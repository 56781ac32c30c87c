package srp

import "strings"

// StatusActive marks a client that should receive email.
const StatusActive = "ACTIVE"

// Client is an email recipient.
type Client struct {
	Email  string
	Status string
}

// EmailClients filters, normalises and collects addresses in a single loop.
func EmailClients(clients []Client) []string {
	var out []string
	for _, c := range clients {
		if c.Status == StatusActive {
			out = append(out, strings.ToLower(c.Email))
		}
	}
	return out
}

// ActiveEmails returns the same addresses as EmailClients, built from helpers
// that each do one thing.
func ActiveEmails(clients []Client) []string {
	var out []string
	for _, c := range clients {
		if isActive(c) {
			out = collect(out, lowerEmail(c.Email))
		}
	}
	return out
}

func isActive(c Client) bool { return c.Status == StatusActive }

func lowerEmail(email string) string { return strings.ToLower(email) }

func collect(dst []string, email string) []string { return append(dst, email) }

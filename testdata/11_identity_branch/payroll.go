package payroll

import "errors"

type Employee interface {
	ID() string
}

type Clerk struct{}

func (Clerk) ID() string { return "clerk" }

type Intern struct{}

func (Intern) ID() string { return "intern" }

type Payroll struct{}

func (Payroll) Pay(e Employee) int {
	switch e.(type) {
	case Clerk:
		return 100
	case Intern:
		return 50
	}
	return 0
}

func Bonus(e Employee) int {
	if _, ok := e.(Clerk); ok {
		return 10
	}
	return 0
}

// Upgrading to another interface is not branching on identity.
func Describe(e Employee) string {
	if s, ok := e.(interface{ String() string }); ok {
		return s.String()
	}
	return e.ID()
}

var errNotFound = errors.New("not found")

type codedError struct{ code int }

func (c *codedError) Error() string { return "coded" }

// Error inspection is left alone.
func Code(err error) int {
	if ce, ok := err.(*codedError); ok {
		return ce.code
	}
	if errors.Is(err, errNotFound) {
		return 404
	}
	return 0
}

package dip

import "context"

// MySQLConnection is a stub driver. Connect records the call and never fails.
type MySQLConnection struct {
	connects int
}

func (c *MySQLConnection) Connect(ctx context.Context) error {
	c.connects++
	return nil
}

// Connects reports how many times Connect was called.
func (c *MySQLConnection) Connects() int { return c.connects }

// OracleConnection is a second stub driver with the same contract.
type OracleConnection struct {
	connects int
}

func (c *OracleConnection) Connect(ctx context.Context) error {
	c.connects++
	return nil
}

func (c *OracleConnection) Connects() int { return c.connects }

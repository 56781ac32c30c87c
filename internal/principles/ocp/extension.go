package ocp

// Contractor is paid the full amount. It was added after Payroll was
// written and required no change there.
type Contractor struct{}

func (Contractor) Remuneration(salary float64) float64 { return salary }

package ocp

import (
	"fmt"
	"io"
)

// Demonstrate pays a CLT employee on 1500 and a trainee on 1200.
func Demonstrate(w io.Writer) error {
	runs := []struct {
		label  string
		r      Remunerable
		salary float64
	}{
		{"clt", CLTContract{}, 1500},
		{"trainee", Trainee{}, 1200},
		{"contractor", Contractor{}, 1000},
	}
	for _, run := range runs {
		amount := NewPayroll(run.r).Calculate(run.salary)
		if _, err := fmt.Fprintf(w, "%-10s %8.2f -> %8.2f\n", run.label, run.salary, amount); err != nil {
			return err
		}
	}
	return nil
}

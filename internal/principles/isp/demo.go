package isp

import (
	"fmt"
	"io"
)

// Demonstrate shows a parrot and a penguin on the map and flies the parrot.
func Demonstrate(w io.Writer) error {
	parrot := &Parrot{}
	lines := []string{
		NewBirdView(parrot).Show(-46.63, -23.55),
		NewBirdView(&Penguin{}).Show(-68.30, -54.80),
		NewFlightController(parrot).Climb(120),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

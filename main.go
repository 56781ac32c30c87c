package main

import (
	"os"

	"github.com/olehluchkiv/gosolid/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

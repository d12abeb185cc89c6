package main

import (
	"os"

	"github.com/msto63/contact/cmd/contactctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/msto63/roboarena/cmd/roboarena/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/mkce-it/timetabler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

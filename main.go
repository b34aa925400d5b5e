package main

import (
	"os"

	"github.com/osrh-labs/rideseed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

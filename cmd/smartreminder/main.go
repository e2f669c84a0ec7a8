package main

import (
	"fmt"
	"os"

	"github.com/PixelDavon/SmartReminder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "smartreminder failed: %v\n", err)
		os.Exit(1)
	}
}

// Command crontab parses, inspects and stores five-field crontab schedules.
package main

import (
	"fmt"
	"os"
)

var Version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

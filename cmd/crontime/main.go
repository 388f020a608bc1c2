// Command crontime explains, validates and evaluates cron expressions.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoMatch) && !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, "crontime:", err)
		}
		os.Exit(1)
	}
}

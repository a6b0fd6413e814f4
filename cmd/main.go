package main

import (
	"fmt"
	"os"

	api "Yatube"
)

// Usage: yatube [serve|clearcache|seed]
func main() {
	if err := api.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "yatube:", err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"wilsonci/cmd/wilsonci/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

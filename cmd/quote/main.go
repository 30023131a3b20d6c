// Look up a live quote for a symbol, for checking provider configuration
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/example/stockfolio/internal/env"
	"github.com/example/stockfolio/internal/quote"
)

func main() {
	env.LoadEnvironmentVariables()
	quote.Init()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: quote <symbol>\n")
		os.Exit(1)
	}

	stockQuote, err := quote.Lookup(strings.ToUpper(os.Args[1]))

	if err != nil {
		fmt.Fprintf(os.Stderr, "Lookup error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s): %s\n", stockQuote.Name, stockQuote.Symbol, stockQuote.Price)
}

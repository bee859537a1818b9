package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vido/mediatag/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mediatag <filename> [filename...]")
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, filename := range os.Args[1:] {
		results := parser.Parse(filename)
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode results for %q: %v\n", filename, err)
			os.Exit(1)
		}
	}
}

package main

import (
	"fmt"
	"os"

	wireplancli "github.com/carlmontanari/wireplan/cli"
)

func main() {
	err := wireplancli.Entrypoint().Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wireplan: %s\n", err)

		os.Exit(1)
	}
}

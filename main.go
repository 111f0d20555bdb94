package main

import (
	"fmt"
	"os"

	"github.com/idelchi/godu/internal/cli"
)

// version is the build version, overridable at link time.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "godu: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/dshills/empath/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}

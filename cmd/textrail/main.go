package main

import (
	"os"

	"github.com/ib-77/textrail/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}

package main

import (
	"os"

	"fragit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

package main

import (
	"os"

	"meeting-insights/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}

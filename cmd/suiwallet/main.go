package main

import (
	"os"

	"github.com/suitools/suiwallet/internal/app"
)

func main() {
	runner := app.NewRunner()
	os.Exit(runner.Run(os.Args[1:]))
}

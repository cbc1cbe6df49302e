package main

import (
	"os"

	"irisd/internal/irisctl"
)

func main() {
	os.Exit(irisctl.Main(os.Args[1:]))
}

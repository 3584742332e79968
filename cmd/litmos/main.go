package main

import (
	"os"

	"github.com/hashicorp-forge/litmos/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}

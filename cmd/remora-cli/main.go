package main

import (
	"github.com/nfrund/remora/cmd/remora-cli/cmd"
)

func main() {
	cmd.Execute()
}

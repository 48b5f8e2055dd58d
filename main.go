package main

import (
	"github.com/stencil-dev/stencil-cli/cmd"
)

func main() {
	cmd.Execute()
}

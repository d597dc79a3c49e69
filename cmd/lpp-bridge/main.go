package main

import (
	"github.com/lpwan-io/cayennelpp/cmd/lpp-bridge/cmd"
)

var version string // set by the compiler

func main() {
	cmd.Execute(version)
}

package main

import (
	"github.com/nutrikit/trophe/pkg/cli"
)

func main() {
	cli.Execute()
}

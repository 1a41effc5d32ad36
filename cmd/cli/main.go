package main

import (
	"github.com/lseu-open/modelscore/pkg/cli"
)

func main() {
	cli.Execute()
}

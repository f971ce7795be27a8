package main

import "github.com/andrescamacho/starlanes-go/internal/adapters/cli"

func main() {
	cli.Execute()
}

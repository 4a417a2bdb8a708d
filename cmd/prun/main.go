package main

import "github.com/andrescamacho/prun-cogm/internal/adapters/cli"

func main() {
	cli.Execute()
}

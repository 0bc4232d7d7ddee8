package main

import "github.com/pavanmanishd/contiguous/internal/cli"

func main() {
	cli.Execute()
}

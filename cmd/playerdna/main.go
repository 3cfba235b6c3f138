package main

import "github.com/mcoot/playerdna/internal/cli"

func main() {
	cli.Execute()
}

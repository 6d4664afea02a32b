package main

import "github.com/dalemusser/propertypulse/internal/cli"

func main() {
	cli.Execute()
}

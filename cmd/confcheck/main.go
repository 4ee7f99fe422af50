package main

import "github.com/aalvaropc/confcheck/internal/cli"

func main() {
	cli.Execute()
}

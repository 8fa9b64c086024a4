package main

import "github.com/forPelevin/argseg/internal/cli"

func main() {
	cli.Main()
}

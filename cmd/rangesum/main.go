package main

import "github.com/dylan-marx/rangesum/internal/cli"

func main() {
	cli.Execute()
}

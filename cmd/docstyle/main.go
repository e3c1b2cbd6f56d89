package main

import "docstyle/internal/cli"

func main() {
	cli.Execute()
}

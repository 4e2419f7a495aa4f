package main

import "list-manager/cmd/cli"

func main() {
	// With no subcommand the CLI loads the input file and runs the menu shell.
	cli.RunCLI()
}

package main

import "gamegrid/internal/cli"

func main() {
	cli.Execute()
}

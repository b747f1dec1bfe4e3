package main

import "quadstat/internal/cli"

func main() {
	cli.Execute()
}

package main

import "kyuyo/internal/cli"

func main() {
	cli.Execute()
}

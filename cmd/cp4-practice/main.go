package main

import "github.com/pfrederiksen/cp4-practice/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/seopipe/seopipe/cmd"

func main() {
	cmd.Execute()
}

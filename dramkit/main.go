// Package main is the entry point of the dramkit command-line tool.
package main

import "github.com/sarchlab/dramkit/dramkit/cmd"

func main() {
	cmd.Execute()
}

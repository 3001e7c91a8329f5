// Package main is the entry point for the survivors CLI.
package main

import "gooze.dev/pkg/survivors/cmd"

func main() {
	cmd.Execute()
}

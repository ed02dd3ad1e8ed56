// Package main is the entry point for the gooze-report CLI.
package main

import "gooze.dev/pkg/goozereport/cmd"

func main() {
	cmd.Execute()
}

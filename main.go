// Package main is the entry point for the ammo CLI.
package main

import "ammo.dev/pkg/ammo/cmd"

func main() {
	cmd.Execute()
}

//go:build cli
// +build cli

package main

import (
	_ "obracalc.GO/custom"

	"obracalc.GO/cmd"
	"obracalc.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}

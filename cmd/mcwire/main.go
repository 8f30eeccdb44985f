package main

import "github.com/gstoney/mcwire/cmd/mcwire/cmd"

func main() {
	cmd.Execute()
}

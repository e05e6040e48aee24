package main

import "studiocat/cmd/studiocat/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/xvierd/sprint-cli/cmd"

func main() {
	cmd.Execute()
}

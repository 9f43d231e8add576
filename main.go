package main

import "freebox-gate/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}

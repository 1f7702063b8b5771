package main

import "datacat/cmd/datacat-cli/cmd"

func main() {
	cmd.Execute()
}

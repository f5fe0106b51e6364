package main

import "github.com/fyerfyer/ringq/cmd/qcli/cmd"

func main() {
	cmd.Execute()
}

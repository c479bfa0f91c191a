package main

import "github.com/notargets/gofdm/cmd"

func main() {
	cmd.Execute()
}

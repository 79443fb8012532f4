package main

import "github.com/nfrund/bloomly/cmd/bloomly/cmd"

func main() {
	cmd.Execute()
}

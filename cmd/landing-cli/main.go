package main

import "github.com/nfrund/landing/cmd/landing-cli/cmd"

func main() {
	cmd.Execute()
}

package main

import "massnet.org/mass-sha256/cmd/sha256sum/cmd"

func main() {
	cmd.Execute()
}

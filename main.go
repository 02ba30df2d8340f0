package main

import "github.com/mybible-cli/mybible-cli/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/rectguillotine/solver/cmd/guillotine-cli/cmd"

func main() {
	cmd.Execute()
}

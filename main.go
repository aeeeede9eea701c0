package main

import "github.com/Jorgeamayapabon/design-patterns/cmd"

func main() {
	cmd.Execute()
}

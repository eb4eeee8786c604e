package main

import "github.com/telecare/telecare_backend/cmd"

func main() {
	cmd.Execute()
}

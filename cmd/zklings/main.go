package main

import "github.com/zklings/zklings/internal/cmd"

func main() {
	cmd.Execute()
}

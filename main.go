package main

import "ekscleanup/cmd"

func main() {
	cmd.Execute()
}

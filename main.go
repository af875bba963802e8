package main

import "cartscout/cmd"

func main() {
	cmd.Execute()
}

package main

import "planwise/cmd"

func main() {
	cmd.Execute()
}

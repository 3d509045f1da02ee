package main

import "arbor/cmd"

func main() {
	cmd.Execute()
}

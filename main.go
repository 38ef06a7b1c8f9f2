package main

import "figurine-manager/cmd"

func main() {
	cmd.Execute()
}

package main

import "park-sync/cmd"

func main() {
	cmd.Execute()
}

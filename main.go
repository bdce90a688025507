package main

import "example.com/scanbridge/cmd"

func main() {
	cmd.Execute()
}

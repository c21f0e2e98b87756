package main

import "github.com/kasuboski/juststreamit/cmd"

func main() {
	cmd.Execute()
}

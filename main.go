package main

import "github.com/xvierd/focusnest/cmd"

func main() {
	cmd.Execute()
}

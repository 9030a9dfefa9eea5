package main

import "github.com/Andrew-Carter99/image-organizer/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/indieorganic/OpenCello/cmd"

func main() {
	cmd.Execute()
}

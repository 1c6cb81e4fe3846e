package main

import "github.com/gridgeo/wkbraster/cmd/wkbraster/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/minetrack/sampletool/cmd/sampletool/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/FACorreiaa/geocity-bench/cmd/geocity/cmd"

func main() {
	cmd.Execute()
}

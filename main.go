package main

import "github.com/J4sp3rd3v/fitcoach-cli/cmd/fitcoach"

func main() {
	fitcoach.Execute()
}

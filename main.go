package main

import "github.com/llehouerou/cassette/internal/cli"

func main() {
	cli.Execute()
}

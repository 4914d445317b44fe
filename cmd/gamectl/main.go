package main

import "github.com/slaz/gameservices/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/AlibekovAA/caption-studio/backend/internal/cli"

func main() {
	cli.Execute()
}

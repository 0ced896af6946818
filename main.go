package main

import (
	"github.com/joho/godotenv"

	"github.com/agentic-research/stencil/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}

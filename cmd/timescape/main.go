package main

import (
	"github.com/DreamwareDevelopment/timescape/internal/cli"
)

func main() {
	cli.Execute()
}

package main

import (
	"github.com/ticktock-project/ticktock/internal/cli"
)

func main() {
	cli.Execute()
}

package main

import (
	"os"

	"github.com/RobertKozak/mr-comment/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}

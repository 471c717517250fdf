package main

import (
	"os"

	"github.com/thenoetrevino/avance/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

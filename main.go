package main

import (
	"os"

	"github.com/thenoetrevino/chatdo/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

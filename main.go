package main

import (
	"os"

	"github.com/abhisek/a11ytutor/cmd"
)

func main() {
	os.Exit(cmd.Main())
}

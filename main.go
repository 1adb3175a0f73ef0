package main

import (
	"github.com/leighmacdonald/cslogstats/internal/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/arkadda/seri/cmd/seri/cmd"
)

func main() {
	cmd.Execute()
}

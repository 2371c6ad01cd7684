package main

import (
	"context"
	"fmt"
	"os"

	"github.com/telton/console/cmds"
)

func main() {
	if err := cmds.Execute(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

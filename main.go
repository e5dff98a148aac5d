package main

import (
	"context"
	"os"

	"github.com/careledger/careledger/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

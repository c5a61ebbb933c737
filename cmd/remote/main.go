// cmd/remote/main.go
package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"tractor.dev/toolkit-go/engine/cli"
)

var Version = "dev"

func main() {
	root := &cli.Command{
		Version: Version,
		Usage:   "remote",
		Short:   "handheld presentation remote",
	}

	root.AddCommand(runCmd())
	root.AddCommand(checkCmd())

	if err := cli.Execute(context.Background(), root, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

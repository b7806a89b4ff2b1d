// Package main provides a CLI that prints the probability that the edge of
// the unit square closest to one random point holds a point equidistant from
// it and a second random point.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"honnef.co/go/edgeprob/internal/config"

	edgeprobcmd "honnef.co/go/edgeprob/internal/cmd/edgeprob"
)

func main() {
	cfg, err := edgeprobcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := edgeprobcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}

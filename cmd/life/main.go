package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golife/internal/app"
	"golife/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, os.Stdout); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\ninterrupted")
			return
		}
		fmt.Fprintln(os.Stderr, "life:", err)
		os.Exit(1)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "life runs Conway's Game of Life on the console, into a")
	fmt.Fprintln(out, "self-refreshing html page, or in a window (ebiten builds).")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "patterns: %s, random, or raw ./X notation like .X/..X/XXX\n", strings.Join(life.Names(), ", "))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "flags:")
	flag.PrintDefaults()
}

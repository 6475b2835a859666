package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/egaotan/anchor-workspace/anchor/app"
	"github.com/egaotan/anchor-workspace/config"
	"github.com/egaotan/anchor-workspace/resolver"
	"github.com/egaotan/anchor-workspace/utils"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	go shutdown(cancel, quit)

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, app.ErrUsage)
		os.Exit(2)
	}
	cfg, err := config.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %s\n", err)
		os.Exit(1)
	}
	log, err := utils.NewLog(cfg.LogPath, config.AnchorLog, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %s\n", err)
		os.Exit(1)
	}
	source, err := app.NewSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open workspace: %s\n", err)
		os.Exit(1)
	}

	anchor := app.NewAnchor(ctx, source, os.Stdout, log)
	if err := anchor.Run(os.Args[2:]); err != nil {
		switch {
		case err == app.ErrUsage:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		case resolver.IsNotFound(err):
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		default:
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		}
		os.Exit(1)
	}
}

func shutdown(cancel context.CancelFunc, quit <-chan os.Signal) {
	osCall := <-quit
	fmt.Printf("System call: %v, anchor is shutting down......\n", osCall)
	cancel()
}

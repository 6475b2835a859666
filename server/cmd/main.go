package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/egaotan/anchor-workspace/config"
	"github.com/egaotan/anchor-workspace/server"
	"github.com/egaotan/anchor-workspace/utils"
	"github.com/egaotan/anchor-workspace/workspace"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	go shutdown(cancel, quit)

	configFile := ""
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %s\n", err)
		os.Exit(1)
	}
	log, err := utils.NewLog(cfg.LogPath, config.ServerLog, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %s\n", err)
		os.Exit(1)
	}

	s := server.NewServer(ctx, cfg.Listen, workspace.NewMemory(nil), log)
	s.Service()
}

func shutdown(cancel context.CancelFunc, quit <-chan os.Signal) {
	osCall := <-quit
	fmt.Printf("System call: %v, workspace server is shutting down......\n", osCall)
	cancel()
}

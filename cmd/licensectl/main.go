// Command licensectl issues and inspects licenses and resets the admin account
// against the configured store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtroode/marketmanager-server/internal/config"
	"github.com/dtroode/marketmanager-server/internal/logger"
)

const usage = `usage: licensectl [flags] <command> [args]

commands:
  generate [count] [days]        issue count licenses for placeholder customers
  single [name] [email] [days]   issue one license
  list                           print every license with its status
  create-admin                   replace admin accounts with the default admin
  purge-sessions                 delete expired sessions
`

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	var (
		dataDir = flag.String("data", "", "data directory, overrides DATA_DIR")
		backend = flag.String("backend", "", "store backend, overrides STORE_BACKEND")
		timeout = flag.Duration("timeout", 30*time.Second, "command timeout")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *backend != "" {
		cfg.StoreBackend = *backend
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	lg := logger.NewWithWriter(cfg.LogLevel, os.Stderr)
	if err := run(ctx, cfg, lg, flag.Args(), os.Stdout); err != nil {
		log.Fatalf("licensectl %s: %v", flag.Arg(0), err)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rewined/labelgrid/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Tolerant: a missing .env just means the environment is already set.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "override labelgrid config path (optional)")
	serverBind := flag.String("server", "", "label service host:port (optional, overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, ServerBind: *serverBind}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "labelgrid: %v\n", err)
		return 1
	}
	return 0
}

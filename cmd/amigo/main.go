package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Parker2127/Amigo/internal/config"
	"github.com/Parker2127/Amigo/internal/server"
)

const logPrefix = "[amigo]"

func main() {
	config.LoadDotEnv(logPrefix)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%s config: %v", logPrefix, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg).Run(ctx, cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("%s server: %v", logPrefix, err)
	}
}

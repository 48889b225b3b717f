package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jha9262/SafePath-AI/internal/components"
	"github.com/jha9262/SafePath-AI/internal/config"
)

func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := components.SetupLogger(cfg.Env)
	if cfg.APIKey == "" {
		return fmt.Errorf("API_KEY is empty")
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		comps.CacheRefresher.Run(ctx)
	}()

	if !cfg.Webhook.Disabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.AlertSender.Run(ctx)
		}()
	}

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shutting down the servers")

	return nil
}

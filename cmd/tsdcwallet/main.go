// @title           TSDC Wallet API
// @version         1.0
// @description     Multi-wallet TSDC (Solana SPL) wallet service
// @host            localhost:8080
// @BasePath        /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/AlexZinkM/tsdc-wallet/docs"
	"github.com/AlexZinkM/tsdc-wallet/internal/api"
	"github.com/AlexZinkM/tsdc-wallet/internal/app"
	"github.com/AlexZinkM/tsdc-wallet/internal/client"
	"github.com/AlexZinkM/tsdc-wallet/internal/config"
	"github.com/AlexZinkM/tsdc-wallet/internal/handler"
	"github.com/AlexZinkM/tsdc-wallet/internal/logging"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Get()

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := app.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	walletHandler := handler.NewWalletHandler(store, client.NewCoinGeckoClient(cfg.PriceAPIURL), handler.TokenSettings{
		Mint:          cfg.TokenMint,
		PriceCoinID:   cfg.PriceCoinID,
		PriceCurrency: cfg.PriceCurrency,
	}, log)

	srv := &http.Server{
		Addr:              ":" + config.GetPort(),
		Handler:           api.SetupRouter(walletHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("store", config.GetStorePath()),
			zap.String("balanceSource", cfg.BalanceSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}


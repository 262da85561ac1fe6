package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"boattracker-viz/config"
	"boattracker-viz/feed"
	"boattracker-viz/server"
	"boattracker-viz/storage"
	"boattracker-viz/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config (or BOATTRACKER_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to resolve timezone: %v", err)
	}

	store := storage.NewStore(cfg.EventLogCapacity)

	// The subscriber's callbacks land on the server; the server is built
	// right after, before Start ever runs.
	var srv *server.FleetServer
	sub := feed.NewSubscriber(cfg.Feed(),
		func(snap telemetry.Snapshot, size int) { srv.HandleSnapshot(snap, size) },
		func(err error) { srv.HandleFeedError(err) },
	)

	srv = server.New(store, sub, server.Options{
		OfflineThreshold: cfg.OfflineThresholdSeconds,
		Location:         loc,
		PublicURL:        cfg.PublicURL,
	})

	if err := sub.Start(); err != nil {
		// The UI still serves; it shows the error instead of a spinner.
		log.Printf("[WARN] Feed subscriber failed to start: %v", err)
		log.Printf("[WARN] Serving without live data")
		srv.HandleFeedError(err)
	}
	defer sub.Stop()

	httpSrv := &http.Server{
		Addr:    cfg.HTTPBind,
		Handler: srv.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fmt.Printf("BoatTracker live map\n")
		fmt.Printf("Feed: %s:%d topic=%s\n", cfg.Broker, cfg.Port, cfg.Topic)
		fmt.Printf("UI:   http://localhost%s (scan /qr.png on a phone)\n", cfg.HTTPBind)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Printf("[HTTP] Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

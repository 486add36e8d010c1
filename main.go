package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"blobfield/config"
	"blobfield/logging"
	"blobfield/network"
	"blobfield/room"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogFile)
	defer log.Sync()

	field := room.New(log, cfg.PaymentTimeout)
	go field.Run()

	srv := network.NewServer(field, log)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ws", srv.HandleWS)
	r.Get("/health", srv.HandleHealth)

	// Serve the web client if present.
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	httpSrv := &http.Server{Addr: cfg.Addr, Handler: r}
	go func() {
		log.Infof("blobfield listening on %s (ws endpoint: /ws)", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)
	field.Stop()
}

// Package main wires the HTTP server for the user administration console.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Yosipmikecolin/app-web-wesense/config"
	"github.com/Yosipmikecolin/app-web-wesense/internal/repository"
	"github.com/Yosipmikecolin/app-web-wesense/internal/session"
	"github.com/Yosipmikecolin/app-web-wesense/internal/transport/http/server"
	"github.com/Yosipmikecolin/app-web-wesense/internal/usecase"
	"github.com/Yosipmikecolin/app-web-wesense/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	repo, err := repository.New(ctx, cfg.Repository.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "backend", cfg.Repository.Backend, "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout, cfg.Users)
	sessions := session.NewRegistry(log, repo, repo, session.Options{
		Key:        cfg.Session.StorageKey,
		LoginDelay: cfg.Session.LoginDelay,
		IdleTTL:    cfg.Session.IdleTTL,
		MaxStores:  cfg.Session.MaxContexts,
	})

	serv := server.NewApp(cfg, log, uc, sessions)

	go func() {
		log.Infow("server listening", "addr", cfg.ServerAddr(), "backend", cfg.Repository.Backend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}

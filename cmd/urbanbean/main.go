package main

import (
	"context"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"urbanbean/internal/config"
	"urbanbean/internal/health"
	"urbanbean/internal/http/handlers"
	applog "urbanbean/internal/log"
	"urbanbean/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A store that cannot be reached is not fatal: the process still serves
	// "/" and "/test", and data routes answer 500.
	openCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	st, err := store.Open(openCtx, store.Options{
		Backend:  cfg.StoreBackend,
		URL:      cfg.DatabaseURL,
		Database: cfg.DatabaseName,
		Timeout:  cfg.StoreTimeout,
	})
	cancel()
	if err != nil {
		applog.Error(nil, "store.open.fail", err, map[string]any{"backend": cfg.StoreBackend})
		st = store.Unavailable(err)
	} else {
		applog.Info(nil, "store.open", map[string]any{"backend": st.Name()})
	}
	defer st.Close()

	var grpcServer *grpc.Server
	if cfg.GRPCPort != "" {
		checker := health.NewChecker(st, 15*time.Second, cfg.StoreTimeout)
		grpcServer = grpc.NewServer()
		checker.Register(grpcServer)
		go checker.Run(ctx)

		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			log.Fatalf("grpc listen: %v", err)
		}
		go func() {
			log.Printf("[grpc] health service listening on :%s", cfg.GRPCPort)
			if err := grpcServer.Serve(lis); err != nil {
				log.Printf("[grpc] serve: %v", err)
			}
		}()
	}

	app := handlers.NewApp(handlers.NewDeps(st, cfg), cfg)

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("http shutdown: %v", err)
		}
		if grpcServer != nil {
			grpcServer.GracefulStop()
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("http listen: %v", err)
	}
}

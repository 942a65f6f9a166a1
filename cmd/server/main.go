package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jt828/dropwizard-fixture/internal/bootstrap"
	"github.com/jt828/dropwizard-fixture/internal/fixture"
	"github.com/jt828/dropwizard-fixture/internal/handler"
	"github.com/jt828/dropwizard-fixture/pkg/dropwizard"
	"github.com/jt828/dropwizard-fixture/pkg/observability"
	"github.com/jt828/dropwizard-fixture/pkg/observability/implementation"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		panic(err)
	}

	obs, err := implementation.NewObservability(ctx, implementation.Config{
		ServiceName:  cfg.ServiceName,
		LogLevel:     cfg.LogLevel,
		MetricsAddr:  cfg.MetricsAddr,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		panic(err)
	}
	log := obs.Logger()

	fx, err := fixture.Init()
	if err != nil {
		log.Fatal("failed to initialize fixture metrics", observability.Err(err))
	}
	defer fx.Close()

	reg := implementation.PromRegistry(obs.Meter())
	if reg == nil {
		log.Fatal("prometheus registry not available")
	}
	reg.MustRegister(dropwizard.NewCollector(fx.Registry()))

	ids, err := bootstrap.InitializeSnowflake()
	if err != nil {
		log.Fatal("failed to initialize snowflake", observability.Err(err))
	}

	if err := obs.Start(ctx); err != nil {
		log.Error("failed to start observability", observability.Err(err))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		log.Info("Shutting down server...")
		cancel()
	}()

	lis, err := bootstrap.Listen(ctx, cfg.ListenAddr, bootstrap.NewListenRetry(log))
	if err != nil {
		log.Fatal("failed to listen", observability.String("addr", cfg.ListenAddr), observability.Err(err))
	}

	server := &http.Server{
		Handler: handler.NewRouter(fx.Registry(), handler.Dependencies{
			Logger: log,
			Meter:  obs.Meter(),
			Tracer: obs.Tracer(),
			IDs:    ids,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("fixture server running",
			observability.String("addr", lis.Addr().String()),
			observability.Int("metrics", len(fx.Names())),
		)
		if err := server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to serve", observability.Err(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	log.Info("Graceful stopping fixture server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop fixture server", observability.Err(err))
	}
	log.Info("fixture server stopped")

	if err := obs.Close(shutdownCtx); err != nil {
		log.Error("failed to close observability", observability.Err(err))
	}
}

package main

import (
	"classroom-relay/infrastructure/ws"
	"classroom-relay/internal"
	"classroom-relay/observability"
	"classroom-relay/runtime"
	"classroom-relay/runtime/workers"
	"classroom-relay/services"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the relay and blocks until SIGINT or SIGTERM.
// Deferred cleanups run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Relay core
	monitoring := observability.NewMonitoringManager(log)
	registry := runtime.NewRegistry()
	router := runtime.NewRouter(log, monitoring)
	sessions := services.NewSessionService(log, registry, router, nil)
	relay := services.NewRelayService(log, router, monitoring, nil)

	// 3. Transport
	dispatcher := ws.NewDispatcher(log, sessions, relay, monitoring)
	gateway := ws.NewGateway(log, router, sessions, dispatcher, monitoring, config.GatewayOptions())
	mux := internal.NewMux(log, gateway.ServeWS, registry, monitoring)
	server := internal.NewHTTPServer(config.Address(), mux)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewHTTPServerWorker(log, server, config.ShutdownTimeout),
		workers.NewHeartbeatWorker(log, monitoring, relayStats{registry, router}, config.MetricInterval),
	)
	sup.Run(ctx)

	if ctx.Err() == nil {
		return exitRuntime, fmt.Errorf("workers stopped before shutdown signal")
	}
	log.Info("Program stopped cleanly")
	return exitOK, nil
}

type relayStats struct {
	*runtime.Registry
	*runtime.Router
}

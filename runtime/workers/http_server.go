package workers

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// HTTPServerWorker serves the gateway until the context is canceled,
// then drains in-flight requests for at most shutdownTimeout.
type HTTPServerWorker struct {
	log             *slog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
	listen          func(address string) (net.Listener, error)
}

func NewHTTPServerWorker(log *slog.Logger, server *http.Server, shutdownTimeout time.Duration) *HTTPServerWorker {
	return &HTTPServerWorker{
		log:             log,
		server:          server,
		shutdownTimeout: shutdownTimeout,
		listen: func(address string) (net.Listener, error) {
			return net.Listen("tcp", address)
		},
	}
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	listener, err := w.listen(w.server.Addr)
	if err != nil {
		return err
	}
	w.log.Info("Relay listening", "address", listener.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- w.server.Serve(listener)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	w.log.Info("Shutting down relay", "timeout", w.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
	defer cancel()
	if err = w.server.Shutdown(shutdownCtx); err != nil {
		w.log.Warn("Graceful shutdown interrupted, closing", "error", err)
		_ = w.server.Close()
	}
	return nil
}

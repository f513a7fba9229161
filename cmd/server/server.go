package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

// readHeaderTimeout bounds how long a client may take to send request headers.
const readHeaderTimeout = 10 * time.Second

// startHTTPServer listens on the configured port and serves router until ctx
// is canceled, then shuts down gracefully.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	addr := fmt.Sprintf(":%d", app.config.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return app.serve(ctx, ln, router)
}

// serve runs an HTTP server on ln until ctx is canceled or the server fails.
// In-flight requests get up to the configured shutdown timeout to finish.
func (app *application) serve(ctx context.Context, ln net.Listener, router http.Handler) error {
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	port := app.config.Server.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	app.logger.Info("Relay ready",
		"device_url", fmt.Sprintf("http://%s/ask", net.JoinHostPort(lanHost(net.InterfaceAddrs()), strconv.Itoa(port))),
		"endpoints", app.endpoints(),
	)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "address", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			app.logger.Error("Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
		app.logger.Info("Shutting down server...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup()

	app.logger.Info("Server shutdown completed")
	return nil
}

// lanHost returns the first non-loopback IPv4 address in addrs, which is the
// address devices on the local network use to reach the relay. It falls back
// to "localhost" when there is none or the lookup failed.
func lanHost(addrs []net.Addr, err error) string {
	if err != nil {
		return "localhost"
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return "localhost"
}

// endpoints lists the routes served by setupRouter.
func (app *application) endpoints() []string {
	routes := []string{"GET /", "POST /ask", "GET /health"}
	if app.metrics != nil {
		routes = append(routes, "GET /metrics")
	}
	return routes
}

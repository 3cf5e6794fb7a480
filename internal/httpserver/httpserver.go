package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const readHeaderTimeout = 10 * time.Second

// Run starts the HTTP server and all background services, then blocks until
// SIGINT or SIGTERM.
//  1. Map HTTP handlers and routes
//  2. Start the dashboard hub and, with Redis, its subscriber
//  3. Serve HTTP
//  4. Shut everything down on signal
func (srv *HTTPServer) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.serve(ctx)
}

func (srv *HTTPServer) serve(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.serve.mapHandlers: %v", err)
		return err
	}

	if err := srv.startBackground(ctx); err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	srv.logger.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	var serveErr error
	select {
	case <-ctx.Done():
		srv.logger.Info(ctx, "Stopping escalation service...")
	case serveErr = <-errCh:
		srv.logger.Errorf(ctx, "internal.httpserver.serve.ListenAndServe: %v", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(shutdownCtx, "internal.httpserver.serve.Shutdown: %v", err)
	}
	if err := srv.stopBackground(shutdownCtx); err != nil {
		srv.logger.Errorf(shutdownCtx, "internal.httpserver.serve.stopBackground: %v", err)
	}

	srv.logger.Info(shutdownCtx, "Escalation service stopped")
	return serveErr
}

func (srv *HTTPServer) startBackground(ctx context.Context) error {
	go srv.dashboardUC.Run()
	srv.logger.Info(ctx, "Dashboard hub started")

	if srv.subscriber != nil {
		if err := srv.subscriber.Start(ctx); err != nil {
			srv.logger.Errorf(ctx, "internal.httpserver.startBackground.subscriber.Start: %v", err)
			return err
		}
		srv.logger.Info(ctx, "Dashboard Redis subscriber started")
	}

	return nil
}

// stopBackground stops in dependency order: the subscriber feeding the hub,
// then the monitor, then the hub itself.
func (srv *HTTPServer) stopBackground(ctx context.Context) error {
	var errs []error

	if srv.subscriber != nil {
		if err := srv.subscriber.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("subscriber: %w", err))
		}
	}
	if err := srv.monitorUC.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("monitor: %w", err))
	}
	if srv.unsubscribeFeed != nil {
		srv.unsubscribeFeed()
	}
	if err := srv.dashboardUC.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("dashboard: %w", err))
	}

	return errors.Join(errs...)
}

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"monitor-srv/internal/monitor"
)

// Run starts the HTTP server and the monitoring scheduler, then blocks until shutdown signal.
// This method manages the complete lifecycle of the monitor service:
//  1. Map HTTP handlers and routes (Initialize wiring)
//  2. Start the periodic monitoring scheduler
//  3. Start HTTP server
//  4. Wait for shutdown signal, then stop the scheduler within its budget
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	// 1. Map handlers
	if err := srv.mapHandlers(); err != nil {
		srv.logger.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	// 2. Start the monitoring scheduler
	srv.scheduler.Start()
	srv.logger.Infof(ctx, "Exception monitor scheduler started, interval: %s", srv.scheduler.Status().Interval)

	// 3. Start HTTP server in background
	go func() {
		if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
			srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on port: %d", srv.port)

	// 4. Wait for shutdown signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Info(ctx, <-ch)
	srv.logger.Info(ctx, "Stopping exception monitor...")

	// Graceful shutdown: wait out any in-flight cycle up to the budget
	stopCtx, cancel := context.WithTimeout(ctx, srv.shutdownTimeout)
	defer cancel()

	if err := srv.scheduler.Stop(stopCtx); err != nil {
		if errors.Is(err, monitor.ErrShutdownTimeout) {
			srv.logger.Errorf(ctx, "Scheduler shutdown timed out after %s, a cycle may have been cut short", srv.shutdownTimeout)
		} else {
			srv.logger.Errorf(ctx, "Scheduler shutdown error: %v", err)
		}
		return err
	}

	srv.logger.Info(ctx, "Exception monitor stopped cleanly")
	return nil
}

// Package health exposes store reachability over the standard gRPC health
// protocol so orchestrators can probe the process.
package health

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	applog "urbanbean/internal/log"
	"urbanbean/internal/store"
)

// StoreService is the per-component service name; "" reports the whole process.
const StoreService = "urbanbean.store"

type Checker struct {
	srv      *health.Server
	store    store.Store
	interval time.Duration
	timeout  time.Duration
	last     healthpb.HealthCheckResponse_ServingStatus
}

func NewChecker(st store.Store, interval, timeout time.Duration) *Checker {
	c := &Checker{
		srv:      health.NewServer(),
		store:    st,
		interval: interval,
		timeout:  timeout,
		last:     healthpb.HealthCheckResponse_UNKNOWN,
	}
	c.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return c
}

// Register attaches the health service to gs.
func (c *Checker) Register(gs *grpc.Server) {
	healthpb.RegisterHealthServer(gs, c.srv)
}

func (c *Checker) Server() healthpb.HealthServer { return c.srv }

// Refresh pings the store once and publishes the result.
func (c *Checker) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	err := c.store.Ping(ctx)
	if err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	if status != c.last {
		applog.Info(nil, "health.change", map[string]any{"status": status.String(), "store": c.store.Name()})
		if err != nil {
			applog.Error(nil, "health.ping.fail", err, nil)
		}
	}
	c.set(status)
	return status
}

// Run refreshes on every tick until ctx is done, then marks everything as
// not serving.
func (c *Checker) Run(ctx context.Context) {
	c.Refresh(ctx)
	t := time.NewTicker(c.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			c.srv.Shutdown()
			return
		case <-t.C:
			c.Refresh(ctx)
		}
	}
}

func (c *Checker) set(status healthpb.HealthCheckResponse_ServingStatus) {
	c.last = status
	c.srv.SetServingStatus("", status)
	c.srv.SetServingStatus(StoreService, status)
}

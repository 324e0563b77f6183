package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HealthCheckCommand probes a running instance's liveness and readiness endpoints
type HealthCheckCommand struct {
	client *resty.Client
}

func (c *HealthCheckCommand) Name() string { return "health-check" }
func (c *HealthCheckCommand) Description() string {
	return "Probe /healthz and /readyz ([url], defaults to API_URL)"
}

func (c *HealthCheckCommand) Run(ctx context.Context, args []string) error {
	base := firstNonEmpty(argAt(args, 0), os.Getenv("API_URL"), defaultAPIURL)
	base = strings.TrimRight(base, "/")
	PrintHeader("Health check " + base)

	client := c.client
	if client == nil {
		client = resty.New().SetTimeout(healthCheckTimeout)
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		took, err := probe(ctx, client, base+path)
		switch {
		case err != nil:
			return fmt.Errorf("%s: %w", path, err)
		case took > slowResponse:
			PrintWarning("%s ok but slow (%v)", path, took)
		default:
			PrintSuccess("%s ok (%v)", path, took)
		}
	}
	return nil
}

func probe(ctx context.Context, client *resty.Client, url string) (time.Duration, error) {
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		return 0, fmt.Errorf("status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	return resp.Time(), nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

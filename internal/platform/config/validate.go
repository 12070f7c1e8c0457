package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// problems collects validation failures for one section.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.require(slices.Contains(allowed, got),
		"%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (p problems) err() error { return errors.Join(p...) }

// Validate checks every section and returns all failures joined.
func (c *Config) Validate() error {
	errs := []error{
		c.Server.validate(),
		c.Log.validate(),
		c.Model.validate(),
		c.Telemetry.validate(),
		c.History.validate(),
		c.Batch.validate(),
	}
	// The client section only matters to the remote backend.
	if c.Model.Backend == ModelBackendRemote {
		errs = append(errs, c.Client.validate())
	}
	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	var p problems
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.require(s.ShutdownTimeout >= 0, "server.shutdown_timeout must not be negative")
	return p.err()
}

func (l *LogConfig) validate() error {
	var p problems
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
	return p.err()
}

func (m *ModelConfig) validate() error {
	var p problems
	p.oneOf("model.backend", m.Backend, ModelBackendFile, ModelBackendRemote, ModelBackendNone)
	if m.Backend == ModelBackendFile {
		p.require(m.Path != "", "model.path must not be empty when backend is file")
	}
	p.require(m.Timeout >= 0, "model.timeout must not be negative")
	return p.err()
}

func (cl *ClientConfig) validate() error {
	var p problems
	p.require(cl.BaseURL != "", "client.base_url must not be empty")
	p.require(cl.Timeout > 0, "client.timeout must be positive")
	p.require(cl.Retry.MaxAttempts >= 1,
		"client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0,
		"client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rps := cl.RateLimit.RequestsPerSecond
	p.require(rps >= 0, "client.rate_limit.requests_per_second must not be negative, got %f", rps)
	if rps > 0 {
		p.require(cl.RateLimit.BurstSize >= 1,
			"client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize)
	}
	return p.err()
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var p problems
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	if t.Exporter == "otlp" {
		p.require(t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	}
	return p.err()
}

func (h *HistoryConfig) validate() error {
	if !h.Enabled {
		return nil
	}
	var p problems
	p.require(h.Path != "", "history.path must not be empty when history is enabled")
	p.require(h.RecentLimit >= 1, "history.recent_limit must be >= 1, got %d", h.RecentLimit)
	return p.err()
}

func (b *BatchConfig) validate() error {
	var p problems
	p.require(b.MaxItems >= 1, "batch.max_items must be >= 1, got %d", b.MaxItems)
	p.require(b.MaxWorkers >= 1, "batch.max_workers must be >= 1, got %d", b.MaxWorkers)
	return p.err()
}

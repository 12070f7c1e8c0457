package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// exporter is a validated exporter selection. For OTLP, host is the
// collector's host:port and insecure is true unless the endpoint is https.
type exporter struct {
	kind     string
	host     string
	insecure bool
}

func parseExporter(kind, endpoint string) (exporter, error) {
	switch kind {
	case ExporterStdout:
		return exporter{kind: kind}, nil
	case ExporterOTLP:
		if endpoint == "" {
			return exporter{}, errors.New("otlp exporter requires an endpoint")
		}
		e := exporter{kind: kind, host: endpoint, insecure: true}
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			e.host = u.Host
			e.insecure = u.Scheme != "https"
		}
		return e, nil
	default:
		return exporter{}, fmt.Errorf("unsupported exporter %q (want %q or %q)", kind, ExporterStdout, ExporterOTLP)
	}
}

func (e exporter) spanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if e.kind == ExporterStdout {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(e.host)}
	if e.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (e exporter) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	if e.kind == ExporterStdout {
		return stdoutmetric.New()
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(e.host)}
	if e.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

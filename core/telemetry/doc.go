// Package telemetry wires tracing and metrics.
//
// Tracing uses OpenTelemetry with an OTLP/HTTP exporter and is off unless
// configured. Metrics use a private Prometheus registry exposed on /metrics
// through the fiber adaptor, so tests can build independent instances.
//
// # Usage
//
//	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer shutdown(context.Background())
//
//	metrics := telemetry.NewMetrics()
//	app.Get("/metrics", metrics.Handler())
package telemetry

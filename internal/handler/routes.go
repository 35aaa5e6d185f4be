package handler

// Probe and tooling paths live at the root next to the resources; there is no API prefix.
const (
	LivePath    = "/live"
	ReadyPath   = "/ready"
	MetricsPath = "/metrics"
	OpenAPIPath = "/openapi.yaml"
	DocsPath    = "/docs"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

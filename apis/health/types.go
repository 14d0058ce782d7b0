package health

// HealthResponse represents the health check response structure.
// It contains server status information for monitoring and health checks,
// including uptime, version, and the instance the response came from.
type HealthResponse struct {
	// Status indicates the current server status (e.g., "healthy")
	Status string `json:"status"`

	// Timestamp is when the health check was performed (UTC ISO-8601)
	Timestamp string `json:"timestamp"`

	// Hostname is the machine's network name at the time of the check
	Hostname string `json:"hostname"`

	// Environment is the configured deployment environment
	Environment string `json:"environment"`

	// CloudProvider is the configured hosting environment label
	CloudProvider string `json:"cloud_provider"`

	// Version is the configured application version
	Version string `json:"version"`

	// UptimeSeconds is the elapsed time since process start, rounded to 2 decimals
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadyResponse represents the readiness probe response structure.
// Readiness signals the service can accept traffic, distinct from liveness.
type ReadyResponse struct {
	// Status is always "ready" while the process is serving requests
	Status string `json:"status"`
}

package models

// Health status values
const (
	// HealthStatusUp is the top-level status of every check served by a running process
	HealthStatusUp = "UP"

	// CheckStatusReady is the nested status of the readiness check
	CheckStatusReady = "READY"

	// CheckStatusAlive is the nested status of the liveness check
	CheckStatusAlive = "ALIVE"
)

// Check names
const (
	ReadinessCheckName = "Readiness check"
	LivenessCheckName  = "Liveness check"
)

// HealthCheck is a single structured health report unit
type HealthCheck struct {
	Name   string          `json:"name" example:"Liveness check"`
	Status string          `json:"status" example:"UP"`
	Data   HealthCheckData `json:"data"`
}

// HealthCheckData carries the uptime and version details of a check
type HealthCheckData struct {
	// From is the process start instant in UTC, format: 2025-11-10T14:30:00.000Z
	From string `json:"from" example:"2025-11-10T14:30:00.000Z"`

	// Uptime is a compact human-readable duration, e.g. "2h 5m 9s"
	Uptime string `json:"uptime" example:"2h 5m 9s"`

	// UptimeSeconds is the whole number of seconds since From
	UptimeSeconds int64 `json:"uptimeSeconds" example:"7509"`

	Version string `json:"version" example:"1.0.0"`

	// Status is READY or ALIVE depending on the check
	Status string `json:"status" example:"ALIVE"`
}

// HealthSummaryResponse represents the response of the aggregate health endpoint
type HealthSummaryResponse struct {
	Status string        `json:"status" example:"UP"`
	Checks []HealthCheck `json:"checks"`
}

// HealthCheckResponse represents the response of a single-check health endpoint
type HealthCheckResponse struct {
	Status string      `json:"status" example:"UP"`
	Check  HealthCheck `json:"check"`
}

package hubsdk

// HealthChecks reports the status of the hub's critical dependencies.
type HealthChecks struct {
	Database string `json:"database,omitempty"`
}

// HealthResponse is the payload returned by the hub's health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

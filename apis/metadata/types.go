package metadata

// MetadataResponse represents the instance metadata response structure.
// It identifies the running instance and the environment it was deployed to.
type MetadataResponse struct {
	// Hostname is the machine's network name at the time of the request
	Hostname string `json:"hostname"`

	// Environment is the configured deployment environment
	Environment string `json:"environment"`

	// CloudProvider is the configured hosting environment label
	CloudProvider string `json:"cloud_provider"`

	// Version is the configured application version
	Version string `json:"version"`
}

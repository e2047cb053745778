package domain

import "time"

// BuildRecord is what the orchestrator remembers about the last build of a configuration.
type BuildRecord struct {
	RunID           string    `json:"run_id,omitzero"`
	ConfigurationID string    `json:"configuration_id,omitzero"`
	RuntimeID       string    `json:"runtime_id,omitzero"`
	Fingerprint     string    `json:"fingerprint,omitzero"`
	Sequence        uint64    `json:"sequence,omitzero"`
	Targets         []string  `json:"targets,omitempty"`
	Bootstrapped    bool      `json:"bootstrapped,omitzero"`
	Succeeded       bool      `json:"succeeded,omitzero"`
	Timestamp       time.Time `json:"timestamp,omitzero"`
}

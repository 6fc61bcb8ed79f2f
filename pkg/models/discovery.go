package models

import "time"

// DiscoveryStatus is the lifecycle state of a discovery run.
type DiscoveryStatus string

const (
	DiscoveryStatusCompleted DiscoveryStatus = "completed"
	DiscoveryStatusFailed    DiscoveryStatus = "failed"
)

// SeedDevice describes the starting point of a discovery run.
type SeedDevice struct {
	Hostname  string `json:"hostname,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	Method    string `json:"method"`
}

// ExpansionSettings control how a discovery run expands beyond its seed.
// The snapshot adapter carries fixed defaults; it never expands.
type ExpansionSettings struct {
	Enabled       bool     `json:"enabled"`
	MaxHops       int      `json:"max_hops"`
	ProtocolOrder []string `json:"protocol_order"`
}

// CredentialSettings list the credential profiles a run was allowed to use.
type CredentialSettings struct {
	ProfileIDs []string `json:"profile_ids"`
}

// ScanOptions are the per-run scan toggles.
type ScanOptions struct {
	IncludeInterfaces bool `json:"include_interfaces"`
	IncludeLLDP       bool `json:"include_lldp"`
	TimeoutSeconds    int  `json:"timeout_seconds"`
}

// DiscoveryError records one per-device failure inside a run.
type DiscoveryError struct {
	DeviceID   string    `json:"device_id,omitempty"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NameCount is one histogram bucket in a discovery summary.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary aggregates a discovery run for reporting.
// Histogram slices are sorted by descending count; ties keep encounter order.
type Summary struct {
	ScanDurationSeconds float64     `json:"scan_duration_seconds"`
	DevicesPerSecond    float64     `json:"devices_per_second"`
	TopVendors          []NameCount `json:"top_vendors"`
	TopOSVersions       []NameCount `json:"top_os_versions"`
	TopRoles            []NameCount `json:"top_roles"`
}

// ResultSet bundles the entities produced by one discovery run.
type ResultSet struct {
	TotalDevices   int              `json:"total_devices"`
	NewDevices     int              `json:"new_devices"`
	UpdatedDevices int              `json:"updated_devices"`
	FailedDevices  int              `json:"failed_devices"`
	Devices        []Device         `json:"devices"`
	Links          []Link           `json:"links"`
	Errors         []DiscoveryError `json:"errors"`
	Summary        Summary          `json:"summary"`
}

// DiscoveryResult is the complete, immutable output of one discovery run.
type DiscoveryResult struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Status      DiscoveryStatus    `json:"status"`
	StartedAt   time.Time          `json:"started_at"`
	CompletedAt time.Time          `json:"completed_at"`
	Progress    int                `json:"progress"`
	SeedDevice  SeedDevice         `json:"seed_device"`
	Expansion   ExpansionSettings  `json:"expansion"`
	Credentials CredentialSettings `json:"credentials"`
	ScanOptions ScanOptions        `json:"scan_options"`
	Results     ResultSet          `json:"results"`
}

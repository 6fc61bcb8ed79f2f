package models

import "time"

// DeviceStatus represents the normalized operational state of a device.
type DeviceStatus string

const (
	DeviceStatusUp      DeviceStatus = "up"
	DeviceStatusDown    DeviceStatus = "down"
	DeviceStatusWarning DeviceStatus = "warning"
	DeviceStatusUnknown DeviceStatus = "unknown"
)

// Location is a geographic position attached to a device or site.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fingerprint describes the observable service surface backing a role
// assignment. Populated by later enrichment stages, not by the adapter.
type Fingerprint struct {
	Services    []string `json:"services,omitempty"`
	OpenPorts   []int    `json:"open_ports,omitempty"`
	BannerHints []string `json:"banner_hints,omitempty"`
}

// Role is a functional role assigned to a device (core, access, firewall...).
type Role struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug,omitempty"`
	Fingerprint Fingerprint `json:"fingerprint"`
}

// CredentialRef points at a credential profile usable against a device.
// The adapter emits an empty list; credential assignment happens elsewhere.
type CredentialRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// MonitorRef points at a monitor attached to a device.
type MonitorRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Device is a network device in the NetVantage topology model.
type Device struct {
	ID           string          `json:"id"`
	Hostname     string          `json:"hostname"`
	Name         string          `json:"name"`
	IPAddresses  []string        `json:"ip_addresses"`
	Vendor       string          `json:"vendor"`
	Model        string          `json:"model"`
	OS           string          `json:"os"`
	Status       DeviceStatus    `json:"status"`
	Location     *Location       `json:"location,omitempty"`
	Labels       []string        `json:"labels"`
	Tags         []string        `json:"tags"`
	LastSeen     time.Time       `json:"last_seen"`
	Roles        []Role          `json:"roles"`
	Interfaces   []Interface     `json:"interfaces"`
	Credentials  []CredentialRef `json:"credentials"`
	Dependencies []string        `json:"dependencies"`
	Monitors     []MonitorRef    `json:"monitors"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

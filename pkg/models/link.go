package models

import "time"

// DiscoverySource labels the evidence type that produced a link.
type DiscoverySource string

const (
	// DiscoverySourceSNMP marks links derived from physical cable records.
	DiscoverySourceSNMP DiscoverySource = "snmp"
	// DiscoverySourceLLDP marks links derived from neighbor reports.
	DiscoverySourceLLDP DiscoverySource = "lldp"
)

// LLDPLinkInfo carries protocol metadata for neighbor-derived links.
type LLDPLinkInfo struct {
	ChassisID             string   `json:"chassis_id,omitempty"`
	PortID                string   `json:"port_id,omitempty"`
	TTL                   int      `json:"ttl"`
	SystemName            string   `json:"system_name,omitempty"`
	SystemDescription     string   `json:"system_description,omitempty"`
	PortDescription       string   `json:"port_description,omitempty"`
	ManagementAddresses   []string `json:"management_addresses"`
	CapabilitiesSupported []string `json:"capabilities_supported"`
	CapabilitiesEnabled   []string `json:"capabilities_enabled"`
}

// Link connects two interfaces on two devices. Endpoints are identifier
// pairs into the device/interface sets of the same discovery result.
type Link struct {
	ID                string          `json:"id"`
	SourceDeviceID    string          `json:"source_device_id"`
	SourceInterfaceID string          `json:"source_interface_id"`
	TargetDeviceID    string          `json:"target_device_id"`
	TargetInterfaceID string          `json:"target_interface_id"`
	DiscoverySource   DiscoverySource `json:"discovery_source"`
	Confidence        float64         `json:"confidence"` // [0,1]
	LastSeen          time.Time       `json:"last_seen"`
	IsUp              bool            `json:"is_up"`
	LLDP              *LLDPLinkInfo   `json:"lldp,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

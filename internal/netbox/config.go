package netbox

import "time"

// Config holds the NetBox export source configuration.
type Config struct {
	URL          string        `mapstructure:"url"`           // NetBox base URL (e.g., "https://netbox.example.com")
	Token        string        `mapstructure:"token"`         // API token
	Timeout      time.Duration `mapstructure:"timeout"`       // HTTP client timeout (default: 30s)
	PageSize     int           `mapstructure:"page_size"`     // List-endpoint page size (default: 500)
	NeighborPath string        `mapstructure:"neighbor_path"` // Optional LLDP collector endpoint path
}

// DefaultConfig returns a Config with sensible defaults.
// URL is empty, meaning remote fetch is disabled until configured.
func DefaultConfig() Config {
	return Config{
		Timeout:  30 * time.Second,
		PageSize: 500,
	}
}

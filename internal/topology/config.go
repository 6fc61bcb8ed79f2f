package topology

import "github.com/HerbHall/netvantage/internal/netbox"

// Config holds the topology module configuration.
type Config struct {
	NetBox     netbox.Config `mapstructure:"netbox"`      // Upstream inventory source
	ResultName string        `mapstructure:"result_name"` // Default name for discovery results
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		NetBox:     netbox.DefaultConfig(),
		ResultName: "netbox-import",
	}
}

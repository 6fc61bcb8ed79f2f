// Package config wires Viper into the plugin.Config interface. The
// server reads top-level keys (server.*, logging.*) directly from Viper;
// each module gets a Sub view of its own plugins.<name> section so it
// never sees sibling configuration.
package config

import (
	"time"

	"github.com/HerbHall/netvantage/pkg/plugin"
	"github.com/spf13/viper"
)

var _ plugin.Config = (*ViperConfig)(nil)

// ViperConfig adapts a Viper instance to plugin.Config.
type ViperConfig struct {
	v *viper.Viper
}

// New wraps a Viper instance. A nil argument yields an empty config, so
// modules with no plugins.<name> section still get a usable (all-zero)
// view rather than nil.
func New(v *viper.Viper) *ViperConfig {
	if v == nil {
		v = viper.New()
	}
	return &ViperConfig{v: v}
}

// Viper exposes the underlying instance for the few callers that need
// raw access, like the server reading server.port at startup.
func (c *ViperConfig) Viper() *viper.Viper { return c.v }

// Sub returns the named subsection as its own Config. Missing sections
// come back empty, not nil.
func (c *ViperConfig) Sub(key string) plugin.Config {
	return New(c.v.Sub(key))
}

func (c *ViperConfig) Unmarshal(target any) error { return c.v.Unmarshal(target) }

func (c *ViperConfig) Get(key string) any         { return c.v.Get(key) }
func (c *ViperConfig) GetString(key string) string { return c.v.GetString(key) }
func (c *ViperConfig) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *ViperConfig) GetBool(key string) bool     { return c.v.GetBool(key) }

func (c *ViperConfig) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }

func (c *ViperConfig) IsSet(key string) bool { return c.v.IsSet(key) }

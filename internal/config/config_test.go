package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func topologyViper() *viper.Viper {
	v := viper.New()
	v.Set("plugins.topology.enabled", true)
	v.Set("plugins.topology.result_name", "netbox-import")
	v.Set("plugins.topology.netbox.url", "https://netbox.example.com")
	v.Set("plugins.topology.netbox.timeout", "30s")
	v.Set("plugins.topology.netbox.page_size", 500)
	return v
}

func TestSub_ScopesToPluginSection(t *testing.T) {
	cfg := New(topologyViper())

	topo := cfg.Sub("plugins.topology")
	if got := topo.GetString("result_name"); got != "netbox-import" {
		t.Errorf("result_name = %q, want netbox-import", got)
	}
	if got := topo.GetString("netbox.url"); got != "https://netbox.example.com" {
		t.Errorf("netbox.url = %q", got)
	}
	if got := topo.GetInt("netbox.page_size"); got != 500 {
		t.Errorf("netbox.page_size = %d, want 500", got)
	}
	if got := topo.GetDuration("netbox.timeout"); got != 30*time.Second {
		t.Errorf("netbox.timeout = %v, want 30s", got)
	}

	// A scoped view must not see sibling or top-level keys.
	if topo.IsSet("plugins.webhook.url") {
		t.Error("scoped config leaked sibling plugin keys")
	}
}

func TestSub_MissingSectionIsEmptyNotNil(t *testing.T) {
	cfg := New(topologyViper())

	wh := cfg.Sub("plugins.webhook")
	if wh == nil {
		t.Fatal("Sub returned nil for missing section")
	}
	if wh.IsSet("url") {
		t.Error("missing section reported keys as set")
	}
	if got := wh.GetString("url"); got != "" {
		t.Errorf("url = %q, want empty", got)
	}
}

func TestNew_NilViper(t *testing.T) {
	cfg := New(nil)
	if cfg.GetBool("anything") {
		t.Error("empty config returned true for unset bool")
	}
	if cfg.Viper() == nil {
		t.Error("expected a backing viper instance")
	}
}

func TestUnmarshal(t *testing.T) {
	type netboxSection struct {
		URL      string `mapstructure:"url"`
		PageSize int    `mapstructure:"page_size"`
	}

	cfg := New(topologyViper()).Sub("plugins.topology.netbox")

	var got netboxSection
	if err := cfg.Unmarshal(&got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.URL != "https://netbox.example.com" {
		t.Errorf("URL = %q", got.URL)
	}
	if got.PageSize != 500 {
		t.Errorf("PageSize = %d, want 500", got.PageSize)
	}
}

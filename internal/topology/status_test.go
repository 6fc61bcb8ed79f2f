package topology

import (
	"testing"

	"github.com/HerbHall/netvantage/pkg/models"
)

func TestNormalizeDeviceStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want models.DeviceStatus
	}{
		{"active", models.DeviceStatusUp},
		{"offline", models.DeviceStatusDown},
		{"failed", models.DeviceStatusDown},
		{"decommissioning", models.DeviceStatusDown},
		{"planned", models.DeviceStatusWarning},
		{"staged", models.DeviceStatusWarning},
		{"inventory", models.DeviceStatusUnknown},
		{"", models.DeviceStatusUnknown},
		{"Active", models.DeviceStatusUnknown}, // matching is case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeDeviceStatus(tt.raw); got != tt.want {
				t.Errorf("NormalizeDeviceStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCableLinkState(t *testing.T) {
	tests := []struct {
		raw        string
		wantUp     bool
		wantConfid float64
	}{
		{"connected", true, 1.0},
		{"planned", false, 0.5},
		{"decommissioning", false, 0.5},
		{"", false, 0.5},
	}

	for _, tt := range tests {
		up, conf := cableLinkState(tt.raw)
		if up != tt.wantUp || conf != tt.wantConfid {
			t.Errorf("cableLinkState(%q) = (%v, %v), want (%v, %v)",
				tt.raw, up, conf, tt.wantUp, tt.wantConfid)
		}
	}
}

package topology

import (
	"testing"

	"github.com/HerbHall/netvantage/internal/netbox"
	"github.com/HerbHall/netvantage/pkg/models"
)

func TestIdentifiersAreDeterministic(t *testing.T) {
	if got := DeviceID(42); got != "device-42" {
		t.Errorf("DeviceID(42) = %q, want %q", got, "device-42")
	}
	if got := InterfaceID(7); got != "interface-7" {
		t.Errorf("InterfaceID(7) = %q, want %q", got, "interface-7")
	}
	if got := SiteID(3); got != "site-3" {
		t.Errorf("SiteID(3) = %q, want %q", got, "site-3")
	}
	// Identical inputs must always yield identical identifiers.
	if DeviceID(42) != DeviceID(42) {
		t.Error("DeviceID is not stable across calls")
	}
}

func TestAdaptDevice(t *testing.T) {
	nb := nbDevice(1, "core-sw-01", "Cisco", "Catalyst 9300", "Core Switch",
		withPlatform("IOS-XE"), withIP4("10.0.0.1/24"), withIP6("2001:db8::1/64"))
	nb.Tags = []netbox.NBTag{{ID: 1, Name: "Production", Slug: "production"}}

	dev, err := AdaptDevice(nb)
	if err != nil {
		t.Fatalf("AdaptDevice: %v", err)
	}

	if dev.ID != "device-1" {
		t.Errorf("ID = %q, want device-1", dev.ID)
	}
	if dev.Hostname != "core-sw-01" || dev.Name != "core-sw-01" {
		t.Errorf("hostname/name = %q/%q", dev.Hostname, dev.Name)
	}
	if dev.Vendor != "Cisco" || dev.Model != "Catalyst 9300" {
		t.Errorf("vendor/model = %q/%q", dev.Vendor, dev.Model)
	}
	if dev.OS != "IOS-XE" {
		t.Errorf("OS = %q, want IOS-XE", dev.OS)
	}
	if dev.Status != models.DeviceStatusUp {
		t.Errorf("Status = %q, want up", dev.Status)
	}
	// IPv4 first, then IPv6, both with the prefix length stripped.
	want := []string{"10.0.0.1", "2001:db8::1"}
	if len(dev.IPAddresses) != 2 || dev.IPAddresses[0] != want[0] || dev.IPAddresses[1] != want[1] {
		t.Errorf("IPAddresses = %v, want %v", dev.IPAddresses, want)
	}
	if len(dev.Labels) != 1 || dev.Labels[0] != "Production" {
		t.Errorf("Labels = %v", dev.Labels)
	}
	if len(dev.Tags) != 1 || dev.Tags[0] != "production" {
		t.Errorf("Tags = %v", dev.Tags)
	}
	if len(dev.Roles) != 1 || dev.Roles[0].Name != "Core Switch" {
		t.Errorf("Roles = %v", dev.Roles)
	}
	if dev.Interfaces == nil || dev.Dependencies == nil {
		t.Error("collection fields must be empty, not nil")
	}
}

func TestAdaptDeviceDefaults(t *testing.T) {
	nb := nbDevice(2, "bare-01", "Generic", "Box", "Server")

	dev, err := AdaptDevice(nb)
	if err != nil {
		t.Fatalf("AdaptDevice: %v", err)
	}
	if dev.OS != "Unknown" {
		t.Errorf("OS = %q, want Unknown when platform is absent", dev.OS)
	}
	if len(dev.IPAddresses) != 0 {
		t.Errorf("IPAddresses = %v, want empty", dev.IPAddresses)
	}
	if dev.Location != nil {
		t.Errorf("Location = %+v, want nil without coordinates", dev.Location)
	}
}

func TestAdaptDeviceLocation(t *testing.T) {
	lat, lon := 48.8566, 2.3522
	nb := nbDevice(3, "paris-sw-01", "Cisco", "Catalyst 9300", "Access Switch")
	nb.Latitude = &lat
	nb.Longitude = &lon

	dev, err := AdaptDevice(nb)
	if err != nil {
		t.Fatalf("AdaptDevice: %v", err)
	}
	if dev.Location == nil {
		t.Fatal("Location is nil")
	}
	if dev.Location.Latitude != lat || dev.Location.Longitude != lon {
		t.Errorf("Location = %+v", dev.Location)
	}
}

func TestAdaptDeviceMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*netbox.NBDevice)
	}{
		{"no device type", func(d *netbox.NBDevice) { d.DeviceType = nil }},
		{"no manufacturer", func(d *netbox.NBDevice) { d.DeviceType.Manufacturer = nil }},
		{"no role", func(d *netbox.NBDevice) { d.Role = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nb := nbDevice(9, "broken-01", "Cisco", "Catalyst 9300", "Access Switch")
			tt.mutate(&nb)
			if _, err := AdaptDevice(nb); err == nil {
				t.Error("expected error for malformed device")
			}
		})
	}
}

func TestAdaptInterface(t *testing.T) {
	nb := nbInterface(101, 1, "core-sw-01", "eth0")
	nb.MACAddress = "00:1A:2B:3C:4D:5E"
	speed := int64(1_000_000)
	nb.Speed = &speed
	nb.Duplex = &netbox.NBTypeVal{Value: "full"}
	nb.UntaggedVLAN = &netbox.NBVLAN{ID: 10, VID: 100, Name: "servers"}

	iface, err := AdaptInterface(nb)
	if err != nil {
		t.Fatalf("AdaptInterface: %v", err)
	}
	if iface.ID != "interface-101" {
		t.Errorf("ID = %q", iface.ID)
	}
	if iface.DeviceID != "device-1" {
		t.Errorf("DeviceID = %q", iface.DeviceID)
	}
	if iface.AdminStatus != models.InterfaceUp || iface.OperStatus != models.InterfaceUp {
		t.Errorf("statuses = %q/%q, want up", iface.AdminStatus, iface.OperStatus)
	}
	if iface.Speed != speed {
		t.Errorf("Speed = %d", iface.Speed)
	}
	if iface.VLANID != 100 {
		t.Errorf("VLANID = %d", iface.VLANID)
	}
	if iface.Links == nil {
		t.Error("Links must be empty, not nil")
	}
}

func TestAdaptInterfaceDisabled(t *testing.T) {
	nb := nbInterface(102, 1, "core-sw-01", "eth1")
	nb.Enabled = false

	iface, err := AdaptInterface(nb)
	if err != nil {
		t.Fatalf("AdaptInterface: %v", err)
	}
	if iface.AdminStatus != models.InterfaceDown || iface.OperStatus != models.InterfaceDown {
		t.Errorf("statuses = %q/%q, want down", iface.AdminStatus, iface.OperStatus)
	}
}

func TestAdaptInterfaceWithoutDevice(t *testing.T) {
	nb := nbInterface(103, 1, "core-sw-01", "eth2")
	nb.Device = nil
	if _, err := AdaptInterface(nb); err == nil {
		t.Error("expected error for interface without a device")
	}
}

func TestAdaptSite(t *testing.T) {
	site := AdaptSite(netbox.NBSite{
		ID:     1,
		Name:   "HQ",
		Slug:   "hq",
		Status: &netbox.NBStatusValue{Value: "active"},
	})
	if site.ID != "site-1" {
		t.Errorf("ID = %q", site.ID)
	}
	if site.Status != models.DeviceStatusUp {
		t.Errorf("Status = %q", site.Status)
	}
	// Missing coordinates default to the origin rather than erroring.
	if site.Latitude != 0 || site.Longitude != 0 {
		t.Errorf("coordinates = %v/%v, want 0/0", site.Latitude, site.Longitude)
	}
}

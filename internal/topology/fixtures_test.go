package topology

import (
	"time"

	"github.com/HerbHall/netvantage/internal/netbox"
)

var fixtureTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// nbDevice builds an upstream device with the required sub-objects set.
// Override optional fields after creation as needed.
func nbDevice(id int, name, vendor, model, role string, opts ...func(*netbox.NBDevice)) netbox.NBDevice {
	d := netbox.NBDevice{
		ID:   id,
		Name: name,
		DeviceType: &netbox.NBDeviceType{
			ID:           id * 10,
			Model:        model,
			Manufacturer: &netbox.NBManufacturer{ID: id * 100, Name: vendor},
		},
		Role:        &netbox.NBDeviceRole{ID: id * 1000, Name: role},
		Status:      &netbox.NBStatusValue{Value: "active"},
		Created:     fixtureTime,
		LastUpdated: fixtureTime,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func withPlatform(name string) func(*netbox.NBDevice) {
	return func(d *netbox.NBDevice) {
		d.Platform = &netbox.NBPlatform{ID: 1, Name: name}
	}
}

func withIP4(addr string) func(*netbox.NBDevice) {
	return func(d *netbox.NBDevice) {
		d.PrimaryIP4 = &netbox.NBIPRef{ID: 1, Address: addr, Family: 4}
	}
}

func withIP6(addr string) func(*netbox.NBDevice) {
	return func(d *netbox.NBDevice) {
		d.PrimaryIP6 = &netbox.NBIPRef{ID: 2, Address: addr, Family: 6}
	}
}

// nbInterface builds an upstream interface owned by the given device.
func nbInterface(id, deviceID int, deviceName, name string) netbox.NBInterface {
	return netbox.NBInterface{
		ID:          id,
		Device:      &netbox.NBDeviceRef{ID: deviceID, Name: deviceName},
		Name:        name,
		Type:        &netbox.NBTypeVal{Value: "1000base-t"},
		Enabled:     true,
		Created:     fixtureTime,
		LastUpdated: fixtureTime,
	}
}

// nbCable builds an upstream cable with one termination per side.
func nbCable(id int, status string, aIfID, aDevID, bIfID, bDevID int) netbox.NBCable {
	return netbox.NBCable{
		ID:     id,
		Status: &netbox.NBStatusValue{Value: status},
		ATerminations: []netbox.NBTermination{{
			ObjectType: "dcim.interface",
			Object: &netbox.NBTerminationObject{
				ID:     aIfID,
				Device: &netbox.NBDeviceRef{ID: aDevID},
			},
		}},
		BTerminations: []netbox.NBTermination{{
			ObjectType: "dcim.interface",
			Object: &netbox.NBTerminationObject{
				ID:     bIfID,
				Device: &netbox.NBDeviceRef{ID: bDevID},
			},
		}},
		Created:     fixtureTime,
		LastUpdated: fixtureTime,
	}
}

// sampleSnapshot is the reference fixture: a core switch, two access
// switches, a firewall, and a server, fully cross-linked. Every cable
// has a matching neighbor report, so assembly yields 4 cable-derived
// plus 4 LLDP-derived links.
func sampleSnapshot() *netbox.Snapshot {
	return &netbox.Snapshot{
		Devices: []netbox.NBDevice{
			nbDevice(1, "core-sw-01", "Cisco", "Catalyst 9300", "Core Switch",
				withPlatform("IOS-XE"), withIP4("10.0.0.1/24")),
			nbDevice(2, "access-sw-01", "Cisco", "Catalyst 2960", "Access Switch",
				withPlatform("IOS"), withIP4("10.0.0.2/24")),
			nbDevice(3, "access-sw-02", "Dell", "N2048", "Access Switch",
				withIP4("10.0.0.3/24")),
			nbDevice(4, "fw-01", "Fortinet", "FortiGate 100F", "Firewall",
				withPlatform("FortiOS"), withIP4("10.0.0.4/24"), withIP6("2001:db8::4/64")),
			nbDevice(5, "srv-01", "Dell", "PowerEdge R650", "Server",
				withPlatform("Ubuntu 24.04"), withIP4("10.0.0.5/24")),
		},
		Interfaces: []netbox.NBInterface{
			nbInterface(101, 1, "core-sw-01", "eth0"),
			nbInterface(102, 1, "core-sw-01", "eth1"),
			nbInterface(103, 1, "core-sw-01", "eth2"),
			nbInterface(104, 2, "access-sw-01", "eth0"),
			nbInterface(105, 3, "access-sw-02", "eth0"),
			nbInterface(106, 4, "fw-01", "eth0"),
			nbInterface(107, 5, "srv-01", "eth0"),
		},
		Cables: []netbox.NBCable{
			nbCable(201, "connected", 101, 1, 104, 2),
			nbCable(202, "connected", 102, 1, 105, 3),
			nbCable(203, "connected", 103, 1, 106, 4),
			nbCable(204, "planned", 104, 2, 107, 5),
		},
		LLDPNeighbors: []netbox.NBNeighbor{
			{LocalDevice: "core-sw-01", LocalInterface: "eth0", RemoteDevice: "access-sw-01", RemoteInterface: "eth0", RemotePlatform: "Cisco IOS"},
			{LocalDevice: "core-sw-01", LocalInterface: "eth1", RemoteDevice: "access-sw-02", RemoteInterface: "eth0"},
			{LocalDevice: "core-sw-01", LocalInterface: "eth2", RemoteDevice: "fw-01", RemoteInterface: "eth0", RemotePlatform: "FortiOS"},
			{LocalDevice: "access-sw-01", LocalInterface: "eth0", RemoteDevice: "srv-01", RemoteInterface: "eth0", RemotePortDescription: "mgmt uplink"},
		},
	}
}

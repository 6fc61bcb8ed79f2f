package netbox

// NetBox API response types.
// These mirror the NetBox v4 REST API entity shapes consumed by the
// topology adapter. All fields are read-only input; optional sub-objects
// are pointers so missing upstream data stays distinguishable from zero.

import "time"

// NBStatusValue represents a NetBox status choice (value + label).
type NBStatusValue struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// NBTypeVal represents a NetBox type choice (value + label).
type NBTypeVal struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// NBManufacturer represents a NetBox manufacturer.
type NBManufacturer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	URL  string `json:"url,omitempty"`
}

// NBDeviceType represents a NetBox device type (hardware model).
type NBDeviceType struct {
	ID           int             `json:"id"`
	Manufacturer *NBManufacturer `json:"manufacturer,omitempty"`
	Model        string          `json:"model"`
	Slug         string          `json:"slug"`
	URL          string          `json:"url,omitempty"`
}

// NBDeviceRole represents a NetBox device role (functional purpose).
type NBDeviceRole struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color,omitempty"`
	URL   string `json:"url,omitempty"`
}

// NBPlatform represents a NetBox platform (OS/firmware family).
type NBPlatform struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	URL  string `json:"url,omitempty"`
}

// NBTag represents a NetBox tag.
type NBTag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color,omitempty"`
	URL   string `json:"url,omitempty"`
}

// NBIPRef is a primary-IP reference embedded on a device.
// Address is CIDR notation ("192.168.1.1/24").
type NBIPRef struct {
	ID      int    `json:"id"`
	Address string `json:"address"`
	Family  int    `json:"family,omitempty"`
}

// NBSite represents a NetBox site (data center / location).
type NBSite struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Status      *NBStatusValue `json:"status,omitempty"`
	Description string         `json:"description,omitempty"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	URL         string         `json:"url,omitempty"`
	Created     time.Time      `json:"created,omitempty"`
	LastUpdated time.Time      `json:"last_updated,omitempty"`
}

// NBDevice represents a NetBox device entity.
type NBDevice struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Display     string         `json:"display,omitempty"`
	DeviceType  *NBDeviceType  `json:"device_type,omitempty"`
	Role        *NBDeviceRole  `json:"role,omitempty"`
	Platform    *NBPlatform    `json:"platform,omitempty"`
	Site        *NBSite        `json:"site,omitempty"`
	Status      *NBStatusValue `json:"status,omitempty"`
	PrimaryIP4  *NBIPRef       `json:"primary_ip4,omitempty"`
	PrimaryIP6  *NBIPRef       `json:"primary_ip6,omitempty"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	Serial      string         `json:"serial,omitempty"`
	Tags        []NBTag        `json:"tags,omitempty"`
	URL         string         `json:"url,omitempty"`
	Created     time.Time      `json:"created,omitempty"`
	LastUpdated time.Time      `json:"last_updated,omitempty"`
}

// NBDeviceRef is the slim device reference embedded on interfaces and
// cable terminations (id + name only).
type NBDeviceRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// NBVLAN represents a NetBox VLAN reference.
type NBVLAN struct {
	ID   int    `json:"id"`
	VID  int    `json:"vid"`
	Name string `json:"name,omitempty"`
}

// NBCableRef is the slim cable reference embedded on an interface.
type NBCableRef struct {
	ID int `json:"id"`
}

// NBInterface represents a NetBox device interface.
type NBInterface struct {
	ID           int          `json:"id"`
	Device       *NBDeviceRef `json:"device,omitempty"`
	Name         string       `json:"name"`
	Type         *NBTypeVal   `json:"type,omitempty"`
	Enabled      bool         `json:"enabled"`
	Speed        *int64       `json:"speed,omitempty"` // kbit/s
	Duplex       *NBTypeVal   `json:"duplex,omitempty"`
	MACAddress   string       `json:"mac_address,omitempty"`
	Description  string       `json:"description,omitempty"`
	UntaggedVLAN *NBVLAN      `json:"untagged_vlan,omitempty"`
	Cable        *NBCableRef  `json:"cable,omitempty"`
	URL          string       `json:"url,omitempty"`
	Created      time.Time    `json:"created,omitempty"`
	LastUpdated  time.Time    `json:"last_updated,omitempty"`
}

// NBTerminationObject is the interface a cable termination points at,
// including its owning-device reference.
type NBTerminationObject struct {
	ID     int          `json:"id"`
	Name   string       `json:"name,omitempty"`
	Device *NBDeviceRef `json:"device,omitempty"`
}

// NBTermination represents one end of a physical cable.
type NBTermination struct {
	ObjectType string               `json:"object_type,omitempty"`
	Object     *NBTerminationObject `json:"object,omitempty"`
}

// NBCable represents a physical cable between two (sets of) terminations.
type NBCable struct {
	ID            int             `json:"id"`
	Status        *NBStatusValue  `json:"status,omitempty"`
	ATerminations []NBTermination `json:"a_terminations"`
	BTerminations []NBTermination `json:"b_terminations"`
	URL           string          `json:"url,omitempty"`
	Created       time.Time       `json:"created,omitempty"`
	LastUpdated   time.Time       `json:"last_updated,omitempty"`
}

// NBIPAddress represents a NetBox IP address assignment.
type NBIPAddress struct {
	ID                 int    `json:"id"`
	Address            string `json:"address"`
	AssignedObjectType string `json:"assigned_object_type,omitempty"`
	AssignedObjectID   int    `json:"assigned_object_id,omitempty"`
	URL                string `json:"url,omitempty"`
}

// NBNeighbor is one neighbor-discovery report (LLDP): a local interface
// observed a remote device/interface as its peer. Produced by an LLDP
// collector plugin on the NetBox side, matched by name during adaptation.
type NBNeighbor struct {
	LocalDevice           string `json:"local_device"`
	LocalInterface        string `json:"local_interface"`
	RemoteDevice          string `json:"remote_device"`
	RemoteInterface       string `json:"remote_interface"`
	RemotePlatform        string `json:"remote_platform,omitempty"`
	RemotePortDescription string `json:"remote_port_description,omitempty"`
}

// ListResponse is the generic paginated response from NetBox list endpoints.
type ListResponse[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
	Results  []T    `json:"results"`
}

// Snapshot is one complete export of discovery data, with every paginated
// endpoint already drained into a flat slice. This is the input contract
// of the topology assembler; LLDPNeighbors is optional upstream.
type Snapshot struct {
	Devices       []NBDevice    `json:"devices"`
	Interfaces    []NBInterface `json:"interfaces"`
	Cables        []NBCable     `json:"cables"`
	IPAddresses   []NBIPAddress `json:"ip_addresses"`
	Sites         []NBSite      `json:"sites"`
	LLDPNeighbors []NBNeighbor  `json:"lldp_neighbors,omitempty"`
}

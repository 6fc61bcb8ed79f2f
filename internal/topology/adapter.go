package topology

import (
	"strconv"
	"strings"

	"github.com/HerbHall/netvantage/internal/netbox"
	"github.com/HerbHall/netvantage/pkg/models"
)

// Internal identifiers are pure functions of the upstream numeric id, so
// re-adapting the same upstream record always yields the same id without
// any cross-call state.

// DeviceID derives the internal device id from an upstream numeric id.
func DeviceID(upstreamID int) string {
	return "device-" + strconv.Itoa(upstreamID)
}

// InterfaceID derives the internal interface id from an upstream numeric id.
func InterfaceID(upstreamID int) string {
	return "interface-" + strconv.Itoa(upstreamID)
}

// SiteID derives the internal site id from an upstream numeric id.
func SiteID(upstreamID int) string {
	return "site-" + strconv.Itoa(upstreamID)
}

func roleID(upstreamID int) string {
	return "role-" + strconv.Itoa(upstreamID)
}

// hostAddr strips the CIDR suffix from an address ("192.168.1.1/24" ->
// "192.168.1.1").
func hostAddr(cidr string) string {
	host, _, _ := strings.Cut(cidr, "/")
	return host
}

// AdaptDevice maps one upstream device record to the internal schema.
// Optional fields (platform, tags, coordinates, primary IPs) default
// rather than fail; a missing device_type, manufacturer, or role is a
// MalformedInputError because those fields are used unconditionally.
func AdaptDevice(nb netbox.NBDevice) (models.Device, error) {
	if nb.DeviceType == nil {
		return models.Device{}, &MalformedInputError{Kind: "device", UpstreamID: nb.ID, Field: "device_type"}
	}
	if nb.DeviceType.Manufacturer == nil {
		return models.Device{}, &MalformedInputError{Kind: "device", UpstreamID: nb.ID, Field: "device_type.manufacturer"}
	}
	if nb.Role == nil {
		return models.Device{}, &MalformedInputError{Kind: "device", UpstreamID: nb.ID, Field: "role"}
	}

	// IPv4 first, then IPv6, both host-only.
	ips := make([]string, 0, 2)
	if nb.PrimaryIP4 != nil {
		ips = append(ips, hostAddr(nb.PrimaryIP4.Address))
	}
	if nb.PrimaryIP6 != nil {
		ips = append(ips, hostAddr(nb.PrimaryIP6.Address))
	}

	os := "Unknown"
	if nb.Platform != nil && nb.Platform.Name != "" {
		os = nb.Platform.Name
	}

	// A location needs both coordinates; one alone is meaningless.
	var loc *models.Location
	if nb.Latitude != nil && nb.Longitude != nil {
		loc = &models.Location{Latitude: *nb.Latitude, Longitude: *nb.Longitude}
	}

	labels := make([]string, 0, len(nb.Tags))
	tags := make([]string, 0, len(nb.Tags))
	for _, tag := range nb.Tags {
		labels = append(labels, tag.Name)
		tags = append(tags, tag.Slug)
	}

	rawStatus := ""
	if nb.Status != nil {
		rawStatus = nb.Status.Value
	}

	display := nb.Display
	if display == "" {
		display = nb.Name
	}

	return models.Device{
		ID:          DeviceID(nb.ID),
		Hostname:    nb.Name,
		Name:        display,
		IPAddresses: ips,
		Vendor:      nb.DeviceType.Manufacturer.Name,
		Model:       nb.DeviceType.Model,
		OS:          os,
		Status:      NormalizeDeviceStatus(rawStatus),
		Location:    loc,
		Labels:      labels,
		Tags:        tags,
		LastSeen:    nb.LastUpdated,
		Roles: []models.Role{{
			ID:   roleID(nb.Role.ID),
			Name: nb.Role.Name,
			Slug: nb.Role.Slug,
			// Fingerprint population happens in later enrichment stages.
			Fingerprint: models.Fingerprint{},
		}},
		Interfaces:   []models.Interface{},
		Credentials:  []models.CredentialRef{},
		Dependencies: []string{},
		Monitors:     []models.MonitorRef{},
		CreatedAt:    nb.Created,
		UpdatedAt:    nb.LastUpdated,
	}, nil
}

// AdaptInterface maps one upstream interface record to the internal
// schema. The owning-device id comes from the embedded device reference,
// keeping interface adaptation independent of device adaptation order.
// Admin and operational status are both derived from the enabled flag;
// no independent link-state signal exists at this layer.
func AdaptInterface(nb netbox.NBInterface) (models.Interface, error) {
	if nb.Device == nil {
		return models.Interface{}, &MalformedInputError{Kind: "interface", UpstreamID: nb.ID, Field: "device"}
	}

	status := models.InterfaceDown
	if nb.Enabled {
		status = models.InterfaceUp
	}

	var speed int64
	if nb.Speed != nil {
		speed = *nb.Speed
	}
	var duplex string
	if nb.Duplex != nil {
		duplex = nb.Duplex.Value
	}
	var vlanID int
	if nb.UntaggedVLAN != nil {
		vlanID = nb.UntaggedVLAN.VID
	}

	return models.Interface{
		ID:          InterfaceID(nb.ID),
		DeviceID:    DeviceID(nb.Device.ID),
		Index:       nb.ID,
		Name:        nb.Name,
		Description: nb.Description,
		MACAddress:  nb.MACAddress,
		Speed:       speed,
		Duplex:      duplex,
		AdminStatus: status,
		OperStatus:  status,
		VLANID:      vlanID,
		Links:       []string{},
		CreatedAt:   nb.Created,
		UpdatedAt:   nb.LastUpdated,
	}, nil
}

// AdaptSite maps one upstream site record to the internal schema.
// Latitude/longitude default to 0 when absent, matching the upstream
// export contract even though (0,0) is a real coordinate.
func AdaptSite(nb netbox.NBSite) models.Site {
	var lat, lon float64
	if nb.Latitude != nil {
		lat = *nb.Latitude
	}
	if nb.Longitude != nil {
		lon = *nb.Longitude
	}

	rawStatus := ""
	if nb.Status != nil {
		rawStatus = nb.Status.Value
	}

	return models.Site{
		ID:          SiteID(nb.ID),
		Name:        nb.Name,
		Slug:        nb.Slug,
		Status:      NormalizeDeviceStatus(rawStatus),
		Description: nb.Description,
		Latitude:    lat,
		Longitude:   lon,
		CreatedAt:   nb.Created,
		UpdatedAt:   nb.LastUpdated,
	}
}

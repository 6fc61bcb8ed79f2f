package topology

import (
	"fmt"
	"strconv"
	"time"

	"github.com/HerbHall/netvantage/internal/netbox"
	"github.com/HerbHall/netvantage/pkg/models"
)

// lldpTTL is the fixed time-to-live recorded on neighbor-derived links.
const lldpTTL = 120

// lldpConfidence is the fixed confidence for neighbor-derived links:
// below a connected cable (1.0) but above an unconfirmed one (0.5).
const lldpConfidence = 0.9

// Diagnostics records reference-resolution misses absorbed during link
// inference. Skips are expected data noise, not errors; callers can
// surface them to distinguish a clean run from a partial one.
type Diagnostics struct {
	SkippedCables    int      `json:"skipped_cables"`
	SkippedNeighbors int      `json:"skipped_neighbors"`
	Reasons          []string `json:"reasons,omitempty"`
}

func (d *Diagnostics) skipCable(cableID int, reason string) {
	d.SkippedCables++
	d.Reasons = append(d.Reasons, fmt.Sprintf("cable %d: %s", cableID, reason))
}

func (d *Diagnostics) skipNeighbor(index int, reason string) {
	d.SkippedNeighbors++
	d.Reasons = append(d.Reasons, fmt.Sprintf("neighbor report %d: %s", index, reason))
}

// cableLinkID derives the internal link id for a cable-derived link.
func cableLinkID(cableID int) string {
	return "link-" + strconv.Itoa(cableID)
}

// lldpLinkID derives the internal link id for a neighbor-derived link
// from the report's position. The prefix keeps the id space disjoint
// from cable-derived links.
func lldpLinkID(index int) string {
	return "lldp-link-" + strconv.Itoa(index)
}

// linkFromCable derives one link from a physical cable record, or nil
// when either end cannot be resolved. Only the first termination of each
// side is used; multi-termination cables (trunk/LAG) are not fully
// modeled.
func linkFromCable(cable netbox.NBCable, knownDevices map[string]struct{}, diag *Diagnostics) *models.Link {
	if len(cable.ATerminations) == 0 || len(cable.BTerminations) == 0 {
		diag.skipCable(cable.ID, "missing termination")
		return nil
	}

	a := cable.ATerminations[0].Object
	b := cable.BTerminations[0].Object
	if a == nil || a.Device == nil {
		diag.skipCable(cable.ID, "A-side termination has no device reference")
		return nil
	}
	if b == nil || b.Device == nil {
		diag.skipCable(cable.ID, "B-side termination has no device reference")
		return nil
	}

	srcDevice := DeviceID(a.Device.ID)
	tgtDevice := DeviceID(b.Device.ID)
	if _, ok := knownDevices[srcDevice]; !ok {
		diag.skipCable(cable.ID, fmt.Sprintf("A-side device %s not in adapted set", srcDevice))
		return nil
	}
	if _, ok := knownDevices[tgtDevice]; !ok {
		diag.skipCable(cable.ID, fmt.Sprintf("B-side device %s not in adapted set", tgtDevice))
		return nil
	}

	rawStatus := ""
	if cable.Status != nil {
		rawStatus = cable.Status.Value
	}
	up, confidence := cableLinkState(rawStatus)

	return &models.Link{
		ID:                cableLinkID(cable.ID),
		SourceDeviceID:    srcDevice,
		SourceInterfaceID: InterfaceID(a.ID),
		TargetDeviceID:    tgtDevice,
		TargetInterfaceID: InterfaceID(b.ID),
		DiscoverySource:   models.DiscoverySourceSNMP,
		Confidence:        confidence,
		LastSeen:          cable.LastUpdated,
		IsUp:              up,
		CreatedAt:         cable.Created,
		UpdatedAt:         cable.LastUpdated,
	}
}

// linksFromNeighbors derives links from neighbor-discovery reports by
// exact, case-sensitive hostname and interface-name matching against the
// already-adapted device set. Reports whose endpoints cannot be resolved
// are skipped; naming inconsistencies between the cable and neighbor data
// sources therefore produce missing links, never errors. Devices must
// already carry their interface sublists.
func linksFromNeighbors(reports []netbox.NBNeighbor, devices []models.Device, now time.Time, diag *Diagnostics) []models.Link {
	byHostname := make(map[string]*models.Device, len(devices))
	for i := range devices {
		byHostname[devices[i].Hostname] = &devices[i]
	}

	links := make([]models.Link, 0, len(reports))
	for i, report := range reports {
		src, ok := byHostname[report.LocalDevice]
		if !ok {
			diag.skipNeighbor(i, fmt.Sprintf("local device %q not found", report.LocalDevice))
			continue
		}
		tgt, ok := byHostname[report.RemoteDevice]
		if !ok {
			diag.skipNeighbor(i, fmt.Sprintf("remote device %q not found", report.RemoteDevice))
			continue
		}

		srcIf := findInterface(src, report.LocalInterface)
		if srcIf == nil {
			diag.skipNeighbor(i, fmt.Sprintf("local interface %q not found on %q", report.LocalInterface, report.LocalDevice))
			continue
		}
		tgtIf := findInterface(tgt, report.RemoteInterface)
		if tgtIf == nil {
			diag.skipNeighbor(i, fmt.Sprintf("remote interface %q not found on %q", report.RemoteInterface, report.RemoteDevice))
			continue
		}

		links = append(links, models.Link{
			ID:                lldpLinkID(i),
			SourceDeviceID:    src.ID,
			SourceInterfaceID: srcIf.ID,
			TargetDeviceID:    tgt.ID,
			TargetInterfaceID: tgtIf.ID,
			DiscoverySource:   models.DiscoverySourceLLDP,
			Confidence:        lldpConfidence,
			LastSeen:          now,
			IsUp:              true,
			LLDP: &models.LLDPLinkInfo{
				PortID:                report.RemoteInterface,
				TTL:                   lldpTTL,
				SystemName:            report.RemoteDevice,
				SystemDescription:     report.RemotePlatform,
				PortDescription:       report.RemotePortDescription,
				ManagementAddresses:   tgt.IPAddresses,
				CapabilitiesSupported: []string{},
				CapabilitiesEnabled:   []string{},
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return links
}

// findInterface resolves an interface by exact name within a device.
func findInterface(d *models.Device, name string) *models.Interface {
	for i := range d.Interfaces {
		if d.Interfaces[i].Name == name {
			return &d.Interfaces[i]
		}
	}
	return nil
}

// Package topology converts NetBox discovery exports into the NetVantage
// topology model: normalized devices and interfaces, a link set inferred
// from cable records and LLDP neighbor reports, and aggregate summaries.
//
// The pipeline is a pure, synchronous transformation of one complete
// snapshot into one immutable result. It holds no state between calls,
// so one Assembler may serve concurrent assemblies of independent
// snapshots.
package topology

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HerbHall/netvantage/internal/netbox"
	"github.com/HerbHall/netvantage/pkg/models"
)

// Assembler orchestrates the adaptation pipeline.
type Assembler struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewAssembler creates an Assembler. A nil logger disables logging.
func NewAssembler(logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		logger: logger,
		now:    time.Now,
	}
}

// Assemble converts one discovery snapshot into a DiscoveryResult.
//
// Malformed required fields abort the whole call with a
// MalformedInputError; no partial result is returned. Cable terminations
// and neighbor reports that cannot be resolved are absorbed into the
// returned Diagnostics instead, since partial, noisy discovery data is
// expected.
func (a *Assembler) Assemble(snap *netbox.Snapshot, name string) (*models.DiscoveryResult, Diagnostics, error) {
	var diag Diagnostics

	// Pass 1: devices, order preserved.
	devices := make([]models.Device, 0, len(snap.Devices))
	knownDevices := make(map[string]struct{}, len(snap.Devices))
	for _, nb := range snap.Devices {
		d, err := AdaptDevice(nb)
		if err != nil {
			return nil, diag, fmt.Errorf("adapt device %d: %w", nb.ID, err)
		}
		devices = append(devices, d)
		knownDevices[d.ID] = struct{}{}
	}

	// Pass 2: interfaces, grouped by owning device. An interface whose
	// owner is not in this snapshot is a data-integrity error, not noise.
	byDevice := make(map[string][]models.Interface)
	for _, nb := range snap.Interfaces {
		ifc, err := AdaptInterface(nb)
		if err != nil {
			return nil, diag, fmt.Errorf("adapt interface %d: %w", nb.ID, err)
		}
		if _, ok := knownDevices[ifc.DeviceID]; !ok {
			return nil, diag, fmt.Errorf("adapt interface %d: %w", nb.ID,
				&MalformedInputError{Kind: "interface", UpstreamID: nb.ID, Field: "device"})
		}
		byDevice[ifc.DeviceID] = append(byDevice[ifc.DeviceID], ifc)
	}
	for i := range devices {
		if ifaces, ok := byDevice[devices[i].ID]; ok {
			devices[i].Interfaces = ifaces
		}
	}

	now := a.now()

	// Pass 3: cable-derived links, then neighbor-derived links. The two
	// evidence sources are concatenated, never deduplicated against each
	// other; a physical connection reported by both appears twice.
	links := make([]models.Link, 0, len(snap.Cables)+len(snap.LLDPNeighbors))
	for _, cable := range snap.Cables {
		if link := linkFromCable(cable, knownDevices, &diag); link != nil {
			links = append(links, *link)
		}
	}
	links = append(links, linksFromNeighbors(snap.LLDPNeighbors, devices, now, &diag)...)

	if diag.SkippedCables > 0 || diag.SkippedNeighbors > 0 {
		a.logger.Debug("unresolvable references dropped during link inference",
			zap.Int("skipped_cables", diag.SkippedCables),
			zap.Int("skipped_neighbors", diag.SkippedNeighbors),
		)
	}

	summary := summarize(devices)

	result := &models.DiscoveryResult{
		ID:          uuid.New().String(),
		Name:        name,
		Status:      models.DiscoveryStatusCompleted,
		StartedAt:   now,
		CompletedAt: now,
		Progress:    100,
		SeedDevice:  models.SeedDevice{Method: "inventory"},
		Expansion: models.ExpansionSettings{
			Enabled:       false,
			MaxHops:       0,
			ProtocolOrder: []string{"lldp", "snmp"},
		},
		Credentials: models.CredentialSettings{ProfileIDs: []string{}},
		ScanOptions: models.ScanOptions{
			IncludeInterfaces: true,
			IncludeLLDP:       true,
			TimeoutSeconds:    30,
		},
		Results: models.ResultSet{
			// Every device counts as newly discovered: the snapshot
			// adapter has no incremental re-scan concept.
			TotalDevices:   len(devices),
			NewDevices:     len(devices),
			UpdatedDevices: 0,
			FailedDevices:  0,
			Devices:        devices,
			Links:          links,
			Errors:         []models.DiscoveryError{},
			Summary:        summary,
		},
	}

	a.logger.Info("topology assembled",
		zap.String("result_id", result.ID),
		zap.Int("devices", len(devices)),
		zap.Int("links", len(links)),
		zap.Int("skipped_cables", diag.SkippedCables),
		zap.Int("skipped_neighbors", diag.SkippedNeighbors),
	)

	return result, diag, nil
}

// summarize computes the aggregate histograms for a device set.
func summarize(devices []models.Device) models.Summary {
	vendors := make([]string, 0, len(devices))
	oses := make([]string, 0, len(devices))
	var roles []string
	for _, d := range devices {
		vendors = append(vendors, d.Vendor)
		oses = append(oses, d.OS)
		for _, r := range d.Roles {
			roles = append(roles, r.Name)
		}
	}

	return models.Summary{
		// Assembly is synchronous and instantaneous by construction;
		// it does not model real scan duration.
		ScanDurationSeconds: 0,
		DevicesPerSecond:    0,
		TopVendors:          histogram(vendors),
		TopOSVersions:       histogram(oses),
		TopRoles:            histogram(roles),
	}
}

// histogram counts distinct values and sorts buckets by descending count.
// The sort is stable, so ties keep first-encounter order.
func histogram(values []string) []models.NameCount {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	out := make([]models.NameCount, 0, len(order))
	for _, name := range order {
		out = append(out, models.NameCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

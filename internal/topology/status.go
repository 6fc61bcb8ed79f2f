package topology

import "github.com/HerbHall/netvantage/pkg/models"

// NormalizeDeviceStatus maps an upstream device status value to the
// internal status enum. Unrecognized values (including future upstream
// vocabulary) always fall through to unknown; this function is the single
// translation boundary for device-status churn.
func NormalizeDeviceStatus(raw string) models.DeviceStatus {
	switch raw {
	case "active":
		return models.DeviceStatusUp
	case "offline", "failed", "decommissioning":
		return models.DeviceStatusDown
	case "planned", "staged":
		return models.DeviceStatusWarning
	default:
		return models.DeviceStatusUnknown
	}
}

// cableLinkState maps an upstream cable status to a link up flag and
// confidence score. The scale is a fixed two-point one: 1.0 for a
// connected cable, 0.5 for everything else (including unknown values).
func cableLinkState(raw string) (up bool, confidence float64) {
	if raw == "connected" {
		return true, 1.0
	}
	return false, 0.5
}

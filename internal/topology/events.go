package topology

// Event topics published by the Topology module.
const (
	TopicDiscoveryCompleted = "topology.discovery.completed"
	TopicDiscoveryFailed    = "topology.discovery.failed"
)

// DiscoveryCompletedEvent is the payload for TopicDiscoveryCompleted events.
type DiscoveryCompletedEvent struct {
	ResultID         string `json:"result_id"`
	Name             string `json:"name"`
	Devices          int    `json:"devices"`
	Links            int    `json:"links"`
	SkippedCables    int    `json:"skipped_cables"`
	SkippedNeighbors int    `json:"skipped_neighbors"`
}

// DiscoveryFailedEvent is the payload for TopicDiscoveryFailed events.
type DiscoveryFailedEvent struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

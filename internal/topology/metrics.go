package topology

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/HerbHall/netvantage/pkg/models"
)

// Prometheus metrics for the topology module.
var (
	discoveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topology_discoveries_total",
			Help: "Total number of topology assembly runs by outcome.",
		},
		[]string{"outcome"},
	)
	linksInferredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topology_links_inferred_total",
			Help: "Total number of links inferred, by evidence source.",
		},
		[]string{"source"},
	)
	referencesDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topology_references_dropped_total",
			Help: "Total number of unresolvable references dropped during link inference.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(discoveriesTotal)
	prometheus.MustRegister(linksInferredTotal)
	prometheus.MustRegister(referencesDroppedTotal)
}

// observeResult records metrics for one completed assembly.
func observeResult(result *models.DiscoveryResult, diag Diagnostics) {
	var snmp, lldp int
	for _, link := range result.Results.Links {
		switch link.DiscoverySource {
		case models.DiscoverySourceSNMP:
			snmp++
		case models.DiscoverySourceLLDP:
			lldp++
		}
	}

	discoveriesTotal.WithLabelValues("completed").Inc()
	linksInferredTotal.WithLabelValues("snmp").Add(float64(snmp))
	linksInferredTotal.WithLabelValues("lldp").Add(float64(lldp))
	referencesDroppedTotal.WithLabelValues("cable").Add(float64(diag.SkippedCables))
	referencesDroppedTotal.WithLabelValues("neighbor").Add(float64(diag.SkippedNeighbors))
}

package topology

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/HerbHall/netvantage/internal/netbox"
	"github.com/HerbHall/netvantage/pkg/models"
	"github.com/HerbHall/netvantage/pkg/plugin"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an RFC 7807 problem detail response. Type URIs use
// kebab-case slugs ("unprocessable-entity"), matching the server's
// ProblemType constants.
func writeError(w http.ResponseWriter, status int, detail string) {
	slug := strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "-")
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://netvantage.io/problems/" + slug,
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}

// DiscoveryResponse wraps an assembled result with its diagnostics, so
// callers can tell a clean run from one that dropped unresolvable
// references.
type DiscoveryResponse struct {
	Result      *models.DiscoveryResult `json:"result"`
	Diagnostics Diagnostics             `json:"diagnostics"`
}

// StatusResponse is the response for the GET /status endpoint.
type StatusResponse struct {
	Configured   bool   `json:"configured"`
	URL          string `json:"url,omitempty"`
	NeighborPath string `json:"neighbor_path,omitempty"`
	ResultName   string `json:"result_name"`
}

// handleDiscover fetches a snapshot from the configured NetBox source and
// assembles it into a discovery result.
//
//	@Summary		Run topology discovery
//	@Description	Fetches the current inventory snapshot from NetBox and adapts it into a topology discovery result.
//	@Tags			topology
//	@Produce		json
//	@Param			name	query		string	false	"Discovery result name"
//	@Success		200		{object}	DiscoveryResponse
//	@Failure		422		{object}	map[string]any
//	@Failure		502		{object}	map[string]any
//	@Failure		503		{object}	map[string]any
//	@Router			/topology/discover [post]
func (m *Module) handleDiscover(w http.ResponseWriter, r *http.Request) {
	if m.client == nil {
		writeError(w, http.StatusServiceUnavailable, "topology module has no remote source (set plugins.topology.netbox.url and plugins.topology.netbox.token)")
		return
	}

	snap, err := m.client.FetchSnapshot(r.Context(), m.cfg.NetBox.NeighborPath)
	if err != nil {
		m.logger.Error("snapshot fetch failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	m.assembleAndRespond(w, r, snap)
}

// handleAssemble adapts a snapshot supplied in the request body. This is
// the pure-adapter entry point for file or pre-fetched JSON sources.
//
//	@Summary		Assemble a supplied snapshot
//	@Description	Adapts a discovery snapshot from the request body into a topology discovery result without contacting NetBox.
//	@Tags			topology
//	@Accept			json
//	@Produce		json
//	@Param			name		query		string			false	"Discovery result name"
//	@Param			snapshot	body		netbox.Snapshot	true	"Discovery snapshot"
//	@Success		200			{object}	DiscoveryResponse
//	@Failure		400			{object}	map[string]any
//	@Failure		422			{object}	map[string]any
//	@Router			/topology/assemble [post]
func (m *Module) handleAssemble(w http.ResponseWriter, r *http.Request) {
	var snap netbox.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot body: "+err.Error())
		return
	}

	m.assembleAndRespond(w, r, &snap)
}

// assembleAndRespond runs the assembler over a snapshot and writes the
// result envelope, publishing the outcome on the event bus.
func (m *Module) assembleAndRespond(w http.ResponseWriter, r *http.Request, snap *netbox.Snapshot) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = m.cfg.ResultName
	}

	result, diag, err := m.assembler.Assemble(snap, name)
	if err != nil {
		m.logger.Error("assembly failed", zap.String("name", name), zap.Error(err))
		discoveriesTotal.WithLabelValues("failed").Inc()
		m.publish(r.Context(), plugin.Event{
			Topic:   TopicDiscoveryFailed,
			Payload: DiscoveryFailedEvent{Name: name, Reason: err.Error()},
		})
		if IsMalformedInput(err) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	observeResult(result, diag)
	m.publish(r.Context(), plugin.Event{
		Topic: TopicDiscoveryCompleted,
		Payload: DiscoveryCompletedEvent{
			ResultID:         result.ID,
			Name:             result.Name,
			Devices:          result.Results.TotalDevices,
			Links:            len(result.Results.Links),
			SkippedCables:    diag.SkippedCables,
			SkippedNeighbors: diag.SkippedNeighbors,
		},
	})

	writeJSON(w, http.StatusOK, DiscoveryResponse{Result: result, Diagnostics: diag})
}

// publish emits an event if a bus was injected.
func (m *Module) publish(ctx context.Context, event plugin.Event) {
	if m.bus == nil {
		return
	}
	event.Source = "topology"
	event.Timestamp = time.Now()
	if err := m.bus.Publish(ctx, event); err != nil {
		m.logger.Warn("event publish failed", zap.String("topic", event.Topic), zap.Error(err))
	}
}

// handleStatus returns the current topology module configuration status.
//
//	@Summary		Get topology module status
//	@Description	Returns whether a remote NetBox source is configured and its connection details.
//	@Tags			topology
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Router			/topology/status [get]
func (m *Module) handleStatus(w http.ResponseWriter, _ *http.Request) {
	resp := StatusResponse{
		Configured: m.client != nil,
		ResultName: m.cfg.ResultName,
	}
	if m.client != nil {
		resp.URL = m.cfg.NetBox.URL
		resp.NeighborPath = m.cfg.NetBox.NeighborPath
	}
	writeJSON(w, http.StatusOK, resp)
}

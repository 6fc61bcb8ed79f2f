// Package webhook forwards discovery outcomes to an external HTTP
// endpoint. It subscribes to the topology module's completion and
// failure topics and posts one JSON notification per event.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/HerbHall/netvantage/internal/topology"
	"github.com/HerbHall/netvantage/pkg/plugin"
	"go.uber.org/zap"
)

var (
	_ plugin.Plugin          = (*Module)(nil)
	_ plugin.EventSubscriber = (*Module)(nil)
)

const userAgent = "NetVantage-Webhook/0.1"

// Config holds the notifier settings from plugins.webhook.
type Config struct {
	URL     string
	Timeout time.Duration
	Enabled bool
}

// Module is the webhook notifier plugin.
type Module struct {
	logger *zap.Logger
	cfg    Config
	client *http.Client
}

// New creates an unconfigured notifier; settings arrive in Init.
func New() *Module {
	return &Module{}
}

func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "webhook",
		Version:     "0.1.0",
		Description: "Posts discovery run outcomes to a configured webhook URL",
		Roles:       []string{"notification"},
		APIVersion:  plugin.APIVersionCurrent,
	}
}

func (m *Module) Init(_ context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger
	m.cfg = Config{Timeout: 10 * time.Second, Enabled: true}

	if deps.Config != nil {
		if u := deps.Config.GetString("url"); u != "" {
			m.cfg.URL = u
		}
		if d := deps.Config.GetDuration("timeout"); d > 0 {
			m.cfg.Timeout = d
		}
		if deps.Config.IsSet("enabled") {
			m.cfg.Enabled = deps.Config.GetBool("enabled")
		}
	}
	m.client = &http.Client{Timeout: m.cfg.Timeout}

	if m.cfg.URL == "" {
		m.logger.Warn("webhook URL not configured; notifications will be dropped")
	}
	m.logger.Info("webhook module initialized",
		zap.String("url", m.cfg.URL),
		zap.Duration("timeout", m.cfg.Timeout),
		zap.Bool("enabled", m.cfg.Enabled),
	)
	return nil
}

func (m *Module) Start(_ context.Context) error {
	m.logger.Info("webhook module started")
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("webhook module stopped")
	return nil
}

// Subscriptions implements plugin.EventSubscriber.
func (m *Module) Subscriptions() []plugin.Subscription {
	return []plugin.Subscription{
		{Topic: topology.TopicDiscoveryCompleted, Handler: m.handleEvent},
		{Topic: topology.TopicDiscoveryFailed, Handler: m.handleEvent},
	}
}

// Notification is the JSON body posted to the webhook URL. Completed
// runs carry the result fields; failed runs carry the reason.
type Notification struct {
	Event     string `json:"event"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`

	ResultID         string `json:"result_id,omitempty"`
	Name             string `json:"name,omitempty"`
	Devices          int    `json:"devices,omitempty"`
	Links            int    `json:"links,omitempty"`
	SkippedCables    int    `json:"skipped_cables,omitempty"`
	SkippedNeighbors int    `json:"skipped_neighbors,omitempty"`
	Reason           string `json:"reason,omitempty"`
}

// notificationFor flattens a discovery event payload into the wire body.
// Unknown payload shapes still produce the envelope fields.
func notificationFor(event plugin.Event) Notification {
	n := Notification{
		Event:     event.Topic,
		Source:    event.Source,
		Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
	}
	switch p := event.Payload.(type) {
	case topology.DiscoveryCompletedEvent:
		n.ResultID = p.ResultID
		n.Name = p.Name
		n.Devices = p.Devices
		n.Links = p.Links
		n.SkippedCables = p.SkippedCables
		n.SkippedNeighbors = p.SkippedNeighbors
	case topology.DiscoveryFailedEvent:
		n.Name = p.Name
		n.Reason = p.Reason
	}
	return n
}

func (m *Module) handleEvent(ctx context.Context, event plugin.Event) {
	if !m.cfg.Enabled || m.cfg.URL == "" {
		return
	}

	body, err := json.Marshal(notificationFor(event))
	if err != nil {
		m.logger.Error("failed to marshal notification",
			zap.String("topic", event.Topic),
			zap.Error(err),
		)
		return
	}
	m.deliver(ctx, body, event.Topic)
}

// deliver posts one notification. Failures are logged, never retried;
// the webhook is best-effort by contract.
func (m *Module) deliver(ctx context.Context, body []byte, topic string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.URL, bytes.NewReader(body))
	if err != nil {
		m.logger.Error("failed to build webhook request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Warn("webhook delivery failed",
			zap.String("url", m.cfg.URL),
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		m.logger.Warn("webhook endpoint returned error",
			zap.String("url", m.cfg.URL),
			zap.String("topic", topic),
			zap.Int("status_code", resp.StatusCode),
		)
		return
	}
	m.logger.Debug("webhook delivered",
		zap.String("topic", topic),
		zap.Int("status_code", resp.StatusCode),
	)
}

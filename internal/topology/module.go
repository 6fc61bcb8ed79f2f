package topology

import (
	"context"

	"go.uber.org/zap"

	"github.com/HerbHall/netvantage/internal/netbox"
	"github.com/HerbHall/netvantage/pkg/plugin"
)

// Compile-time interface guards.
var (
	_ plugin.Plugin       = (*Module)(nil)
	_ plugin.HTTPProvider = (*Module)(nil)
)

// Module implements the topology discovery plugin. It pulls inventory
// snapshots from a NetBox instance (or accepts them directly over HTTP)
// and adapts them into the NetVantage topology model.
type Module struct {
	logger    *zap.Logger
	cfg       Config
	client    *netbox.Client
	assembler *Assembler
	bus       plugin.Publisher
}

// New creates a new topology plugin instance.
func New() *Module {
	return &Module{}
}

// Info returns the plugin metadata.
func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "topology",
		Version:     "0.1.0",
		Description: "NetBox topology adaptation and link inference",
		Roles:       []string{"discovery"},
		APIVersion:  plugin.APIVersionCurrent,
	}
}

// Init initializes the module with its dependencies.
func (m *Module) Init(_ context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger
	m.cfg = DefaultConfig()
	m.bus = deps.Bus

	if deps.Config != nil {
		if err := deps.Config.Unmarshal(&m.cfg); err != nil {
			m.logger.Warn("failed to unmarshal topology config, using defaults", zap.Error(err))
		}
	}

	m.assembler = NewAssembler(m.logger)

	// Only create the client if URL and token are configured; the
	// /assemble endpoint works without a remote source.
	if m.cfg.NetBox.URL != "" && m.cfg.NetBox.Token != "" {
		m.client = netbox.NewClient(m.cfg.NetBox.URL, m.cfg.NetBox.Token, m.cfg.NetBox.Timeout, m.cfg.NetBox.PageSize)
		m.logger.Info("netbox source configured",
			zap.String("url", m.cfg.NetBox.URL),
			zap.String("neighbor_path", m.cfg.NetBox.NeighborPath),
		)
	} else {
		m.logger.Info("remote fetch disabled (netbox url or token not configured)")
	}

	m.logger.Info("topology module initialized")
	return nil
}

// Start begins the module's operations. Assembly is stateless and
// on-demand, so there is nothing to start.
func (m *Module) Start(_ context.Context) error {
	m.logger.Info("topology module started")
	return nil
}

// Stop gracefully shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("topology module stopped")
	return nil
}

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "POST", Path: "/discover", Handler: m.handleDiscover},
		{Method: "POST", Path: "/assemble", Handler: m.handleAssemble},
		{Method: "GET", Path: "/status", Handler: m.handleStatus},
	}
}

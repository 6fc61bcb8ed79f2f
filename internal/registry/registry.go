// Package registry owns the module lifecycle. NetVantage composes the
// server from modules (topology, webhook, ...) registered at startup;
// the registry resolves their dependency order, disables what cannot
// run, and drives Init/Start/Stop with panic isolation so one module
// cannot take the process down.
package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/HerbHall/netvantage/pkg/plugin"
	"go.uber.org/zap"
)

// Registry tracks registered modules and their lifecycle state.
type Registry struct {
	mu        sync.RWMutex
	byName    map[string]plugin.Plugin
	meta      map[string]plugin.PluginInfo
	bootOrder []string // dependency order, set by Validate
	disabled  map[string]bool
	logger    *zap.Logger
}

// New creates an empty registry.
func New(logger *zap.Logger) *Registry {
	return &Registry{
		byName:   make(map[string]plugin.Plugin),
		meta:     make(map[string]plugin.PluginInfo),
		disabled: make(map[string]bool),
		logger:   logger,
	}
}

// Register adds a module. All registrations must happen before Validate.
func (r *Registry) Register(p plugin.Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	info := p.Info()
	if info.Name == "" {
		return fmt.Errorf("module has empty name")
	}
	if _, dup := r.byName[info.Name]; dup {
		return fmt.Errorf("module %q already registered", info.Name)
	}

	r.byName[info.Name] = p
	r.meta[info.Name] = info
	r.logger.Info("module registered",
		zap.String("name", info.Name),
		zap.String("version", info.Version),
		zap.Int("api_version", info.APIVersion),
	)
	return nil
}

// Validate resolves the dependency graph: incompatible or unsatisfiable
// optional modules are disabled (transitively), a Required module in
// that state aborts startup, and the survivors get a boot order.
func (r *Registry) Validate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.disableIncompatible(); err != nil {
		return err
	}
	if err := r.disableUnsatisfied(); err != nil {
		return err
	}
	if err := r.cascadeDisable(); err != nil {
		return err
	}

	order, err := r.sortByDependency()
	if err != nil {
		return err
	}
	r.bootOrder = order

	r.logger.Info("module graph resolved",
		zap.Strings("boot_order", r.bootOrder),
		zap.Int("active", len(r.bootOrder)),
		zap.Int("disabled", len(r.disabled)),
	)
	return nil
}

// disableIncompatible checks every module's Plugin API version.
// Must be called with r.mu held.
func (r *Registry) disableIncompatible() error {
	for name, info := range r.meta {
		err := checkAPIVersion(r.logger, name, info.APIVersion)
		if err == nil {
			continue
		}
		if info.Required {
			return err
		}
		r.logger.Warn("disabling module: incompatible API version",
			zap.String("name", name),
			zap.Error(err),
		)
		r.disabled[name] = true
	}
	return nil
}

// disableUnsatisfied disables modules whose declared dependency is not
// registered or already disabled. Must be called with r.mu held.
func (r *Registry) disableUnsatisfied() error {
	for name, info := range r.meta {
		if r.disabled[name] {
			continue
		}
		for _, dep := range info.Dependencies {
			var why string
			if _, ok := r.byName[dep]; !ok {
				why = "not registered"
			} else if r.disabled[dep] {
				why = "disabled"
			} else {
				continue
			}
			if info.Required {
				return fmt.Errorf("module %q depends on %q which is %s", name, dep, why)
			}
			r.logger.Warn("disabling module: dependency unavailable",
				zap.String("name", name),
				zap.String("dependency", dep),
				zap.String("state", why),
			)
			r.disabled[name] = true
			break
		}
	}
	return nil
}

// cascadeDisable propagates disablement to dependents until the set is
// stable. Must be called with r.mu held.
func (r *Registry) cascadeDisable() error {
	for changed := true; changed; {
		changed = false
		for name, info := range r.meta {
			if r.disabled[name] {
				continue
			}
			for _, dep := range info.Dependencies {
				if !r.disabled[dep] {
					continue
				}
				if info.Required {
					return fmt.Errorf("required module %q cannot start: dependency %q is disabled", name, dep)
				}
				r.logger.Warn("cascade disabling module",
					zap.String("name", name),
					zap.String("dependency", dep),
				)
				r.disabled[name] = true
				changed = true
				break
			}
		}
	}
	return nil
}

// InitAll initializes active modules in boot order. Init failures,
// panics, and config validation failures disable optional modules and
// abort for Required ones. Declared event subscriptions are wired to
// the injected bus here, before Start, so no early event is missed.
func (r *Registry) InitAll(ctx context.Context, depsFn func(name string) plugin.Dependencies) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.bootOrder {
		p := r.byName[name]
		deps := depsFn(name)

		r.logger.Info("initializing module", zap.String("name", name))
		if err := safeInit(ctx, p, deps); err != nil {
			if failed := r.failLifecycle(name, "initialize", err); failed != nil {
				return failed
			}
			continue
		}

		if v, ok := p.(plugin.Validator); ok {
			if err := v.ValidateConfig(); err != nil {
				if failed := r.failLifecycle(name, "validate config", err); failed != nil {
					return failed
				}
				continue
			}
		}

		if es, ok := p.(plugin.EventSubscriber); ok && deps.Bus != nil {
			for _, sub := range es.Subscriptions() {
				deps.Bus.Subscribe(sub.Topic, sub.Handler)
				r.logger.Debug("wired event subscription",
					zap.String("module", name),
					zap.String("topic", sub.Topic),
				)
			}
		}
	}
	return nil
}

// StartAll starts initialized modules in boot order.
func (r *Registry) StartAll(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.bootOrder {
		if r.disabled[name] {
			continue
		}
		r.logger.Info("starting module", zap.String("name", name))
		if err := safeStart(ctx, r.byName[name]); err != nil {
			if failed := r.failLifecycle(name, "start", err); failed != nil {
				return failed
			}
		}
	}
	return nil
}

// StopAll stops active modules in reverse boot order, so a module is
// never stopped before its dependents. Stop errors are logged and do
// not block the remaining modules.
func (r *Registry) StopAll(ctx context.Context) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.bootOrder) - 1; i >= 0; i-- {
		name := r.bootOrder[i]
		if r.disabled[name] {
			continue
		}
		r.logger.Info("stopping module", zap.String("name", name))
		if err := safeStop(ctx, r.byName[name]); err != nil {
			r.logger.Error("failed to stop module", zap.String("name", name), zap.Error(err))
		}
	}
}

// failLifecycle handles a lifecycle error for one module: returns a
// terminal error for Required modules, otherwise disables the module
// and returns nil. Must be called with at least r.mu read-held.
func (r *Registry) failLifecycle(name, verb string, err error) error {
	if r.meta[name].Required {
		return fmt.Errorf("required module %q failed to %s: %w", name, verb, err)
	}
	r.logger.Error("optional module failed, disabling",
		zap.String("name", name),
		zap.String("stage", verb),
		zap.Error(err),
	)
	r.disabled[name] = true
	return nil
}

// safeInit, safeStart, and safeStop convert a lifecycle panic into an
// error so the registry's error handling applies uniformly.
func safeInit(ctx context.Context, p plugin.Plugin, deps plugin.Dependencies) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("module panicked during init: %v", rec)
		}
	}()
	return p.Init(ctx, deps)
}

func safeStart(ctx context.Context, p plugin.Plugin) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("module panicked during start: %v", rec)
		}
	}()
	return p.Start(ctx)
}

func safeStop(ctx context.Context, p plugin.Plugin) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("module panicked during stop: %v", rec)
		}
	}()
	return p.Stop(ctx)
}

// Get returns an active module by name.
func (r *Registry) Get(name string) (plugin.Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	if !ok || r.disabled[name] {
		return nil, false
	}
	return p, true
}

// All returns the active modules in boot order.
func (r *Registry) All() []plugin.Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]plugin.Plugin, 0, len(r.bootOrder))
	for _, name := range r.bootOrder {
		if !r.disabled[name] {
			active = append(active, r.byName[name])
		}
	}
	return active
}

// AllRoutes collects HTTP routes from active modules implementing
// HTTPProvider, keyed by module name for mounting under /api/v1/{name}.
func (r *Registry) AllRoutes() map[string][]plugin.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes := make(map[string][]plugin.Route)
	for _, name := range r.bootOrder {
		if r.disabled[name] {
			continue
		}
		if hp, ok := r.byName[name].(plugin.HTTPProvider); ok {
			if pr := hp.Routes(); len(pr) > 0 {
				routes[name] = pr
			}
		}
	}
	return routes
}

// Resolve implements plugin.PluginResolver.
func (r *Registry) Resolve(name string) (plugin.Plugin, bool) {
	return r.Get(name)
}

// ResolveByRole returns active modules declaring the given role.
func (r *Registry) ResolveByRole(role string) []plugin.Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []plugin.Plugin
	for _, name := range r.bootOrder {
		if r.disabled[name] {
			continue
		}
		for _, have := range r.meta[name].Roles {
			if have == role {
				matched = append(matched, r.byName[name])
				break
			}
		}
	}
	return matched
}

// IsDisabled reports whether a module was disabled during validation or
// a lifecycle pass.
func (r *Registry) IsDisabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.disabled[name]
}

// checkAPIVersion verifies a module targets a Plugin API version this
// server supports.
func checkAPIVersion(logger *zap.Logger, name string, apiVersion int) error {
	switch {
	case apiVersion < plugin.APIVersionMin:
		return fmt.Errorf(
			"module %q targets Plugin API v%d, but this server requires v%d or newer (current: v%d)",
			name, apiVersion, plugin.APIVersionMin, plugin.APIVersionCurrent,
		)
	case apiVersion > plugin.APIVersionCurrent:
		return fmt.Errorf(
			"module %q targets Plugin API v%d, but this server only supports up to v%d",
			name, apiVersion, plugin.APIVersionCurrent,
		)
	case apiVersion < plugin.APIVersionCurrent:
		logger.Warn("module targets an older Plugin API version",
			zap.String("name", name),
			zap.Int("module_api", apiVersion),
			zap.Int("server_api", plugin.APIVersionCurrent),
		)
	}
	return nil
}

// sortByDependency orders active modules with Kahn's algorithm.
// Must be called with r.mu held.
func (r *Registry) sortByDependency() ([]string, error) {
	active := make(map[string]bool)
	for name := range r.byName {
		if !r.disabled[name] {
			active[name] = true
		}
	}

	inDegree := make(map[string]int, len(active))
	dependents := make(map[string][]string)
	for name := range active {
		inDegree[name] = 0
	}
	for name := range active {
		for _, dep := range r.meta[name].Dependencies {
			if active[dep] {
				inDegree[name]++
				dependents[dep] = append(dependents[dep], name)
			}
		}
	}

	var ready []string
	for name, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}

	var order []string
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)
		for _, dependent := range dependents[name] {
			if inDegree[dependent]--; inDegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(order) != len(active) {
		var cycled []string
		for name := range active {
			if inDegree[name] > 0 {
				cycled = append(cycled, name)
			}
		}
		return nil, fmt.Errorf("dependency cycle detected among modules: %v", cycled)
	}
	return order, nil
}

package agent

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/logging"
	"github.com/hupe1980/agentswarm/session"
)

// ErrUnknownAgent is returned when a task references a name no definition
// was registered under.
var ErrUnknownAgent = errors.New("agent: unknown agent")

// RegistryOptions configures a Registry.
type RegistryOptions struct {
	// SessionStore persists per-task transcripts and state.
	// Defaults to an in-memory store.
	SessionStore core.SessionStore

	// Logger receives execution logs. Defaults to the no-op logger.
	Logger logging.Logger
}

// Registry resolves agent names to definitions and executes tasks against
// them. It implements core.Executor and is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]*Definition
	store  core.SessionStore
	logger logging.Logger
}

// NewRegistry constructs an empty registry.
func NewRegistry(optFns ...func(o *RegistryOptions)) *Registry {
	opts := RegistryOptions{
		SessionStore: session.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Registry{
		agents: make(map[string]*Definition),
		store:  opts.SessionStore,
		logger: opts.Logger,
	}
}

// Register adds a definition, replacing any previous one with the same name.
func (r *Registry) Register(def *Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[def.Name] = def

	return nil
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.agents[name]

	return def, ok
}

// Names returns the registered agent names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Store exposes the session store tasks are persisted to.
func (r *Registry) Store() core.SessionStore { return r.store }

// describe is used in error messages listing what the registry can run.
func (r *Registry) describe() string {
	names := r.Names()
	if len(names) == 0 {
		return "no agents registered"
	}

	return fmt.Sprintf("registered agents: %v", names)
}

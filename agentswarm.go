// Package agentswarm provides a high-level façade over the delegation
// engine and its collaborators (agent registry, sessions, models and
// logging) enabling rapid construction of multi-agent task systems.
// Most applications interact with this package by:
//  1. Creating a Swarm via New() (optionally overriding default in-memory services)
//  2. Registering one or more agent definitions
//  3. Delegating task trees (Delegate) or declarative plans (DelegatePlan)
//
// The façade delegates scheduling to engine.Engine while keeping setup
// and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a
// durable session store and a structured logger.
package agentswarm

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/hupe1980/agentswarm/agent"
	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/engine"
	"github.com/hupe1980/agentswarm/logging"
	"github.com/hupe1980/agentswarm/session"
	"github.com/hupe1980/agentswarm/tool"
)

// Options configures the Swarm instance.
type Options struct {
	// Mode selects the traversal strategy for every delegation.
	Mode core.TraversalMode

	// Budget bounds each delegation run.
	Budget core.Budget

	// CheckConvergence enables the stagnation detector.
	CheckConvergence bool

	// EvidenceKeys are the outcome fields the detector fingerprints.
	EvidenceKeys []string

	// DefaultAgent substitutes for child specs that omit an agent name.
	DefaultAgent string

	// OnAgentSpawn observes task spawns across all delegations.
	OnAgentSpawn func(taskID string, depth int)

	// OnAgentComplete observes successful executions across all
	// delegations.
	OnAgentComplete func(taskID string, result *core.AgentResult)

	// Executor runs agents. Defaults to the built-in registry backed by
	// SessionStore.
	Executor core.Executor

	// SessionStore persists per-task transcripts (defaults to an
	// in-memory implementation).
	SessionStore core.SessionStore

	// Tools ride along on every delegation for agents to draw on.
	Tools []tool.Tool

	// Skills lists skill names forwarded to every delegation.
	Skills []string

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// Tracer records delegation and task spans.
	Tracer trace.Tracer
}

// Swarm is the high-level façade aggregating the delegation engine and
// the agent registry.
type Swarm struct {
	opts     Options
	registry *agent.Registry
	engine   *engine.Engine
}

// New creates a new Swarm instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) (*Swarm, error) {
	opts := Options{
		Mode:         core.TraversalBFS,
		Budget:       core.DefaultBudget(),
		SessionStore: session.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	registry := agent.NewRegistry(func(o *agent.RegistryOptions) {
		o.SessionStore = opts.SessionStore
		o.Logger = opts.Logger
	})

	executor := opts.Executor
	if executor == nil {
		executor = registry
	}

	eng, err := engine.New(executor, func(o *engine.Options) {
		o.Mode = opts.Mode
		o.Budget = opts.Budget
		o.CheckConvergence = opts.CheckConvergence
		o.EvidenceKeys = opts.EvidenceKeys
		o.DefaultAgent = opts.DefaultAgent
		o.OnAgentSpawn = opts.OnAgentSpawn
		o.OnAgentComplete = opts.OnAgentComplete
		o.Logger = opts.Logger
		o.Tracer = opts.Tracer
	})
	if err != nil {
		return nil, err
	}

	return &Swarm{opts: opts, registry: registry, engine: eng}, nil
}

// RegisterAgent adds an agent definition to the built-in registry. It has
// no effect on delegations when a custom Executor was supplied.
func (s *Swarm) RegisterAgent(def *agent.Definition) error {
	return s.registry.Register(def)
}

// Registry exposes the built-in agent registry.
func (s *Swarm) Registry() *agent.Registry { return s.registry }

// Engine exposes the underlying delegation engine.
func (s *Swarm) Engine() *engine.Engine { return s.engine }

// Delegate runs one delegation rooted at the given agent and prompt with
// the declared children below it. It always returns a result; per-task
// failures are collected inside it.
func (s *Swarm) Delegate(ctx context.Context, agentName, prompt string, children ...*core.ChildSpec) *core.DelegationResult {
	return s.engine.Delegate(ctx, agentName, prompt, s.executionContext(), children...)
}

// DelegatePlan runs a delegation described by a declarative plan,
// typically loaded with config.LoadPlan. The plan's root node becomes
// the root task.
func (s *Swarm) DelegatePlan(ctx context.Context, plan *core.ChildSpec) *core.DelegationResult {
	if plan == nil {
		plan = &core.ChildSpec{}
	}

	return s.engine.Delegate(ctx, plan.Agent, plan.Prompt, s.executionContext(), plan.Children...)
}

// ResetConvergence clears the engine's stagnation history. Call it when
// starting unrelated work on the same Swarm.
func (s *Swarm) ResetConvergence() { s.engine.ResetConvergence() }

func (s *Swarm) executionContext() *core.ExecutionContext {
	if len(s.opts.Tools) == 0 && len(s.opts.Skills) == 0 {
		return nil
	}

	execCtx := &core.ExecutionContext{Skills: s.opts.Skills}

	if len(s.opts.Tools) > 0 {
		execCtx.Tools = s.opts.Tools
	}

	return execCtx
}

package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/hupe1980/agentswarm/convergence"
	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/logging"
)

// DefaultAgentName is used for child specs that do not name an agent.
const DefaultAgentName = "general"

// Options configures an Engine instance using the functional options
// pattern.
type Options struct {
	// Mode selects the traversal strategy. Defaults to core.TraversalBFS.
	Mode core.TraversalMode

	// Budget bounds the resources one delegation run may consume.
	// Defaults to core.DefaultBudget().
	Budget core.Budget

	// CheckConvergence enables the stagnation detector. Off by default.
	CheckConvergence bool

	// EvidenceKeys are the outcome fields the detector fingerprints,
	// resolved as gjson paths against each outcome's JSON form.
	EvidenceKeys []string

	// DefaultAgent is the agent name used for child specs that omit one.
	// Defaults to DefaultAgentName.
	DefaultAgent string

	// OnAgentSpawn fires after a task ID is assigned, before the agent
	// executes. Optional; panics inside the hook are swallowed and
	// logged.
	OnAgentSpawn func(taskID string, depth int)

	// OnAgentComplete fires after a successful execution. Optional;
	// panics inside the hook are swallowed and logged.
	OnAgentComplete func(taskID string, result *core.AgentResult)

	// Logger receives structured engine logs. Defaults to NoOpLogger.
	Logger logging.Logger

	// Tracer records delegation and task spans. Defaults to the global
	// provider's tracer, which is a no-op unless an SDK is installed.
	Tracer trace.Tracer
}

// Engine schedules delegation runs over declared task trees. It is safe
// for sequential reuse; each Delegate call gets a fresh run context while
// the convergence tracker carries over between calls.
type Engine struct {
	executor core.Executor
	mode     core.TraversalMode
	budget   core.Budget

	checkConvergence bool
	tracker          *convergence.Tracker

	defaultAgent string

	onAgentSpawn    func(taskID string, depth int)
	onAgentComplete func(taskID string, result *core.AgentResult)

	logger logging.Logger
	tracer trace.Tracer
}

// New creates an Engine around the given executor. The executor is the
// single collaborator the engine calls to run agents; everything else is
// policy configured through options. Construction fails on a nil
// executor, an invalid budget or an unknown traversal mode.
func New(executor core.Executor, optFns ...func(o *Options)) (*Engine, error) {
	if executor == nil {
		return nil, fmt.Errorf("engine: executor must not be nil")
	}

	opts := Options{
		Mode:         core.TraversalBFS,
		Budget:       core.DefaultBudget(),
		DefaultAgent: DefaultAgentName,
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.Budget.Validate(); err != nil {
		return nil, err
	}

	if _, err := core.ParseTraversalMode(string(opts.Mode)); err != nil {
		return nil, err
	}

	if opts.DefaultAgent == "" {
		opts.DefaultAgent = DefaultAgentName
	}

	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer("github.com/hupe1980/agentswarm/engine")
	}

	return &Engine{
		executor:         executor,
		mode:             opts.Mode,
		budget:           opts.Budget,
		checkConvergence: opts.CheckConvergence,
		tracker:          convergence.NewTracker(opts.EvidenceKeys),
		defaultAgent:     opts.DefaultAgent,
		onAgentSpawn:     opts.OnAgentSpawn,
		onAgentComplete:  opts.OnAgentComplete,
		logger:           opts.Logger,
		tracer:           opts.Tracer,
	}, nil
}

// Budget returns the configured limits.
func (e *Engine) Budget() core.Budget { return e.budget }

// Mode returns the configured traversal mode.
func (e *Engine) Mode() core.TraversalMode { return e.mode }

// Tracker exposes the shared convergence tracker for inspection.
func (e *Engine) Tracker() *convergence.Tracker { return e.tracker }

// ResetConvergence clears the shared stagnation history. The tracker
// otherwise persists across Delegate calls, so repeated similar runs can
// converge; call this when starting unrelated work on the same engine.
func (e *Engine) ResetConvergence() {
	e.tracker.Reset()
}

// Delegate runs one delegation: the root task described by agent and
// prompt, then the declared children according to the configured
// traversal mode and budget. execCtx is forwarded to the executor
// untouched and may be nil.
//
// Delegate always returns a result. Per-task failures are collected as
// data inside it, and a panic escaping the traversal is recovered into a
// StopReasonError result.
func (e *Engine) Delegate(ctx context.Context, agent, prompt string, execCtx *core.ExecutionContext, children ...*core.ChildSpec) (res *core.DelegationResult) {
	dctx := core.NewDelegationContext()

	ctx, span := e.startDelegationSpan(ctx, dctx.RootTaskID, string(e.mode))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("delegation panic: %v", r)
			span.RecordError(err)
			e.logger.Error("delegation run panicked", "root_task_id", dctx.RootTaskID, "panic", r)
			dctx.RecordError(core.NewAgentError(dctx.RootTaskID, agent, err))
			dctx.SetStopReason(core.StopReasonError)
			res = e.assembleResult(dctx)
		}
	}()

	if execCtx == nil {
		execCtx = &core.ExecutionContext{}
	}

	root := &core.ChildSpec{Agent: agent, Prompt: prompt, Children: children}

	e.logger.Info("delegation started",
		"root_task_id", dctx.RootTaskID,
		"agent", agent,
		"mode", string(e.mode),
		"declared_children", len(children),
	)

	switch e.selectMode(dctx) {
	case core.TraversalDFS:
		e.runDFS(ctx, dctx, root, execCtx)
	default:
		e.runBFS(ctx, dctx, root, execCtx)
	}

	res = e.assembleResult(dctx)

	e.logger.Info("delegation finished",
		"root_task_id", dctx.RootTaskID,
		"stop_reason", string(res.StopReason),
		"total_agents", res.TotalAgents,
		"errors", len(res.Errors),
		"elapsed", res.Elapsed,
	)

	return res
}

// assembleResult snapshots the run context and the tracker into the
// terminal summary.
func (e *Engine) assembleResult(dctx *core.DelegationContext) *core.DelegationResult {
	errs := dctx.Errors()

	res := &core.DelegationResult{
		Success:         len(errs) == 0,
		StopReason:      dctx.StopReason(),
		Results:         dctx.Results(),
		Errors:          errs,
		TotalAgents:     dctx.Spawned(),
		MaxDepthReached: dctx.Depth(),
		Elapsed:         dctx.Elapsed(),
		Iterations:      dctx.Iterations(),
		TotalUsage:      dctx.TotalUsage(),
		TotalCost:       dctx.TotalCost(),
	}

	if e.checkConvergence {
		res.Converged = e.tracker.Converged(e.budget.StagnationThreshold)
		res.StagnationDetected = e.tracker.StagnationCount() > 0

		if sig, ok := e.tracker.LastSignature(); ok {
			res.NoveltySignature = sig
		}
	}

	return res
}

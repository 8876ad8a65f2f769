// Package agent contains the named agent definitions and the model-backed
// executor the delegation engine runs tasks against. The package focuses on
// three concerns:
//
//  1. Declarative agent definitions (Definition, Instruction)
//  2. A concurrent registry resolving names to definitions (Registry)
//  3. The execution pipeline turning a task into a model call and an
//     AgentResult (Registry.Execute)
//
// Design principles:
//   - Minimal hidden global state - explicit wiring via Registry options
//   - One definition serves many tasks; per-task state lives in sessions
//   - Observability - logging hooks around every execution
//
// Execution Model:
//   - The engine hands Execute an agent name, a task-scoped session id and
//     the task prompt
//   - The registry resolves the definition, replays the session transcript,
//     renders instructions and drives the definition's model to completion
//   - Model failures surface as errors; the engine records them as data
//
// The package intentionally keeps persistence, model specifics and tool
// abstractions in their respective packages to avoid cyclic deps.
package agent

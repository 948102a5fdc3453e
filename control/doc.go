// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for the execution core.
//
// Provides concurrent-safe state handling primitives including:
//   - Metrics telemetry registry with dynamic keys
//   - State export, debug hooks, and probe registration
//   - A collector wiring the executor, reactor and buffer pool snapshots
package control

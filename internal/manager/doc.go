// Package manager owns the process-wide model handle. It is structured into
// small files by concern:
//
//   - manager.go: Manager type, constructor, simple getters.
//   - config.go: Config and package defaults.
//   - types.go: lifecycle states and the Snapshot view.
//   - errors.go: error types (ErrModelUnavailable).
//   - ensure.go: Init/Ensure loading with the single initialization guard.
//   - ask.go: generation entry point used by the HTTP layer.
//   - status_report.go: Health/Status/Snapshot reporting.
//   - events.go, eventpub_*.go: lifecycle event publishers.
//   - metrics.go: Prometheus collectors for loads and generations.
//
// The lifecycle is uninitialized -> loading -> ready | error. A ready handle
// is read-only for every request until Close.
package manager

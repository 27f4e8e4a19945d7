// Package recon exposes the reconciliation engine as an application feature.
//
// It wires the core/reconcile engine to the outside world: tables can be
// posted directly as JSON payloads, loaded from the configured database
// (one SQL table per side), or fetched as CSV extracts from object storage.
// The HTTP handler returns the three partitions plus a summary; the CLI
// reuses the same source loaders.
//
// # Endpoints
//
//   - POST /recon/run       Reconcile two inline table payloads.
//   - POST /recon/tables    Reconcile two database tables by name.
//   - POST /recon/extracts  Reconcile two CSV objects from the bucket.
//   - GET  /recon/extracts  List the CSV extracts available in the bucket.
//
// A MissingColumnError from the engine maps to 422 so callers can tell a
// fixable input problem apart from an internal failure (500).
package recon

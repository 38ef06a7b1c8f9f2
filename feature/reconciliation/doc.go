// Package reconciliation exposes the reconciliation engine as a service.
//
// Inline requests carry both inputs in the body and never touch storage or
// the database. Roster requests load the roster's required models and the
// owned collection concurrently, then reconcile them; with ?save=true the
// report is written to '<report_prefix>/<roster>/<uuid>.json'.
//
// Inputs larger than reconcile.max_instances (default 500) on either side are
// refused with ErrTooManyInstances before the engine runs. Without a limit the
// engine cap of reconcile.MaxInstances applies.
//
// # HTTP Endpoints
//
//   - POST /reconcile : Inline reconciliation of {"required": [...], "owned": [...]}.
//   - POST /reconcile/explain : Candidate pairs and weights for the same body.
//   - GET /reconcile/:roster : Stored roster against the collection (supports ?save=true).
//   - GET /reconcile/reports/:roster/:id : A previously saved report.
//
// Status codes: 400 invalid amount or payload, 404 unknown roster, 413 too
// many instances, 422 unsupported roster schema, 500 otherwise.
package reconciliation

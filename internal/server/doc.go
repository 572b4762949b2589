// Package server implements the stockroom HTTP API surfaces.
//
// Owns:
//   - HTTP routing, handlers, and request/response contracts for the
//     user management and inventory services
//   - Mapping of store outcomes to status codes and error payloads
//   - Request-ID, access-log, and CORS middleware
//
// Does not own:
//   - Record storage, validation rules, or uniqueness enforcement
//     (see internal/store)
//   - Process bootstrap and configuration
//
// Invariants:
//   - JSON responses go through writeJSON; error payloads carry a
//     stable code and the request ID
//   - Store internals never leak into a response: unexpected faults
//     are logged and answered with a generic 500
package server

// Package store holds the authoritative in-memory record collections
// behind the stockroom HTTP services.
//
// Owns:
//   - Record types (User, InventoryItem, Account) and identifier assignment
//   - Field validation rules applied before any mutation
//   - Uniqueness enforcement (user/account email, inventory item ID)
//   - Listing, substring search, and pagination over live records
//
// Does not own:
//   - HTTP routing, status-code mapping, or JSON request/response shapes
//   - Process bootstrap and configuration
//
// Invariants:
//   - Identifiers are assigned only by a store and never reused, even
//     after deletion
//   - The uniqueness check and the write it guards are atomic with
//     respect to concurrent mutations
//   - Callers receive copies of records, never aliases into store-owned
//     memory
package store

// Package dataview provides an in-memory tabular data view with search,
// sorting, and pagination.
//
// Two access styles are offered:
//   - Table: a stateful view over a fixed source collection, mutated by
//     user-driven operations (Search, Sort, SetPage, Reset) and always
//     resolving to a valid page
//   - Pure functions: ApplySearch, SortRecords, Paginate, and Process for
//     callers that want a stateless, single-call transform per request
//
// Both styles share the Record field-access abstraction, so rows may be
// plain maps or caller-defined structs. The package never mutates source
// records; it only filters and re-orders references to them. Instances are
// single-owner: embedding a Table in concurrent code requires external
// serialization.
package dataview

// Package repository implements the data access layer for the Aisle API.
//
// The two domain aggregates (vendor, wedding) are stored as whole records:
// reads fetch the full aggregate, writes replace it with UPSERT ... CONTENT.
// There are no field-level updates; the aggregate is the unit of atomicity.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Reads return (nil, nil) when the record is absent; services decide
//     which domain error that becomes
//   - SurrealQL queries are parameterized with $variable bindings
//   - type::thing() is used for safe record id handling
//
// # Row Decoding
//
// Aggregates round-trip through encoding/json: the row map minus its record
// id is marshaled and unmarshaled into the model struct. This keeps the
// deeply nested aggregate documents (bookings, guests, registry, timeline)
// in one decode path instead of per-field extraction.
package repository

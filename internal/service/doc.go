// Package service implements the business logic layer for the Aisle API.
//
// Services sit between HTTP handlers and repositories. Each service declares
// the narrow store interface it needs (consumer-side interfaces), so unit
// tests swap in function-field fakes without a database.
//
// # Error Handling
//
// Services return sentinel errors from errors.go. Handlers map them to
// RFC 9457 problem responses via the error mapper; services never construct
// HTTP shapes themselves.
//
// # Write Model
//
// Every mutation is read-compute-upsert over a whole aggregate. The single
// write that spans both aggregates, booking a vendor, goes through the
// PairWriter so the two replacements commit atomically.
package service

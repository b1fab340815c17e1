// Package database provides the database abstraction layer for Aisle.
//
// This package defines the Database interface that abstracts SurrealDB
// operations, keeping business logic independent of the driver.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns the result rows of a statement (SELECT returning lists)
//   - QueryOne: Returns a single row (SELECT by record id)
//   - Execute: No return value (UPSERT/DELETE mutations)
//
// Rows come back as decoded driver values (typically map[string]interface{});
// the repository layer is responsible for mapping them onto model structs.
//
// # Atomic Batches
//
// Multi-statement writes go through AtomicBatch (see transaction.go), which
// wraps the accumulated statements in BEGIN TRANSACTION / COMMIT TRANSACTION
// and submits them as one query. All statements succeed or fail together;
// there is no interactive transaction state between Add() calls.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database

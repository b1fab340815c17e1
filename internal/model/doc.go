// Package model defines domain entities and data structures for the Aisle API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// The domain is built around two top-level aggregates, each persisted and
// replaced as a single record:
//
//   - Vendor: a marketplace service provider carrying its reviews, its
//     booking list and the set of dates it is already committed to
//   - Wedding: an event carrying its guest list, timeline, task board,
//     gift registry and booking references
//
// Nested entities (VendorBooking, Guest, TimelineItem, Task, RegistryItem)
// are owned by their containing aggregate and are never addressed in storage
// on their own.
//
// # Status Unions
//
// Several status fields carry a payload alongside their discriminant, for
// example a cancellation reason or a table number. These are represented as
// small structs with a Tag field:
//
//	type BookingStatus struct {
//	    Tag    BookingStatusTag `json:"tag"`
//	    Reason string           `json:"reason,omitempty"`
//	}
//
// Transition rules compare only the Tag; payloads ride along untouched.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go. The Code
// extension field carries the public error kind exposed by every operation.
package model

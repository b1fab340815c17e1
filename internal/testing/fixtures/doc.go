// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while
// allowing customization via option functions. Factories persist through
// the real repositories so fixture data matches production writes.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	planner := f.CreateUser(t)
//	vendor := f.CreateVendor(t)
//	wedding := f.CreateWedding(t, func(o *fixtures.WeddingOpts) {
//	    o.GuestCount = 150
//	})
package fixtures

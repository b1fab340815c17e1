// Package testdb provides isolated SurrealDB environments for e2e tests.
//
// Each TestDB gets a unique namespace on a real SurrealDB instance so
// tests exercise actual query behavior. Migrations from the repository's
// migrations/ directory are applied on setup.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    rows, err := tdb.DB.Query(tdb.Ctx(), "SELECT * FROM wedding", nil)
//	}
//
// Connection settings come from TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER
// and TEST_DB_PASSWORD, defaulting to a local instance at localhost:8000
// with root/root credentials.
package testdb

// Package config loads application configuration from environment variables.
//
// Every setting has a development default, so a bare `go run ./cmd/server`
// works against a local SurrealDB. Validate reports all problems at once via
// errors.Join rather than failing on the first.
package config

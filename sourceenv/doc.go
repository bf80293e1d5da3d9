// Package sourceenv provides environment tables for a dotenv.Store.
//
// OS() reads and writes the real process environment. NewMap and Snapshot
// give an isolated in-memory table with the same semantics.
//
// Example:
//
//	store := dotenv.New(sourceenv.OS())
//	testStore := dotenv.New(sourceenv.NewMap(map[string]string{"HOME": "/tmp"}))
package sourceenv

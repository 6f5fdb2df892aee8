// Package driving defines the interfaces that the outside world calls INTO core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI depends on these interfaces; core services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, service, or connector package
package driving

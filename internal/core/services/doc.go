// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven ports
// (adapters).
//
// Every service reads and writes through an afero.Fs so tests can run
// against an in-memory filesystem.
package services

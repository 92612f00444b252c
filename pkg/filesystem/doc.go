// Package filesystem provides implementations of the types.FS
// interface: a direct OS-backed one for production use and an
// afero-backed one for tests and in-memory stores.
package filesystem

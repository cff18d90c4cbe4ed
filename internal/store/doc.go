// Package store defines the persistence interfaces for the application's
// entities, the shared error taxonomy for store implementations, and the
// transaction (unit-of-work) helper. Concrete implementations live in
// internal/platform/postgres.
package store

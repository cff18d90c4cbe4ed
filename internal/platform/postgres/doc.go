// Package postgres contains the PostgreSQL implementations of the store
// interfaces. All implementations accept a store.DBTX so they can run against
// either a connection pool or an open transaction, and translate driver
// errors into the store error taxonomy.
package postgres

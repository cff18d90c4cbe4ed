package testdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
)

// StubDB returns a *sql.DB backed by a no-op driver. Transactions begin,
// commit and roll back successfully but execute nothing, which lets unit
// tests drive transactional code paths with mock stores and no database.
func StubDB() *sql.DB {
	return sql.OpenDB(stubConnector{})
}

type stubConnector struct{}

func (stubConnector) Connect(context.Context) (driver.Conn, error) { return stubConn{}, nil }

func (stubConnector) Driver() driver.Driver { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return stubConn{}, nil }

type stubConn struct{}

func (stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("stub connection does not execute statements")
}

func (stubConn) Close() error { return nil }

func (stubConn) Begin() (driver.Tx, error) { return stubTx{}, nil }

type stubTx struct{}

func (stubTx) Commit() error { return nil }

func (stubTx) Rollback() error { return nil }

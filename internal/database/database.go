// Package database wraps the database implementation used for Stockfolio.
package database

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Conn holds a pool of connections to the Postgres database.
type Conn struct {
	pool *pgxpool.Pool
}

type Row interface {
	Scan(dest ...any) error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

var ErrNoRows = pgx.ErrNoRows

// Connect connects to the Postgres database with the project environment variables.
func Connect() (*Conn, error) {
	pool, err := pgxpool.Connect(
		context.Background(),
		fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s",
			os.Getenv("DB_USERNAME"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
		),
	)

	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()

		return nil, err
	}

	return &Conn{pool: pool}, nil
}

// Close closes every connection in the pool.
func (conn *Conn) Close() {
	conn.pool.Close()
}

// Exec executes a database query.
func (conn *Conn) Exec(sql string, arguments ...any) error {
	_, err := conn.pool.Exec(context.Background(), sql, arguments...)

	return err
}

// Query executes a database query returning Rows data.
func (conn *Conn) Query(sql string, arguments ...any) (Rows, error) {
	return conn.pool.Query(context.Background(), sql, arguments...)
}

// QueryRow executes a database query returning Row data.
func (conn *Conn) QueryRow(sql string, arguments ...any) Row {
	return conn.pool.QueryRow(context.Background(), sql, arguments...)
}

// Begin starts a serializable transaction.
//
// Every trade mutation must go through one of these, so the cash update,
// the holding change, and the history append commit or roll back together.
func (conn *Conn) Begin() (*Tx, error) {
	tx, err := conn.pool.BeginTx(
		context.Background(),
		pgx.TxOptions{IsoLevel: pgx.Serializable},
	)

	if err != nil {
		return nil, err
	}

	return &Tx{tx: tx}, nil
}

// Tx wraps a database transaction with the same query methods as Conn.
type Tx struct {
	tx pgx.Tx
}

// Exec executes a database query inside the transaction.
func (tx *Tx) Exec(sql string, arguments ...any) error {
	_, err := tx.tx.Exec(context.Background(), sql, arguments...)

	return err
}

// Query executes a database query inside the transaction.
func (tx *Tx) Query(sql string, arguments ...any) (Rows, error) {
	return tx.tx.Query(context.Background(), sql, arguments...)
}

// QueryRow executes a database query inside the transaction.
func (tx *Tx) QueryRow(sql string, arguments ...any) Row {
	return tx.tx.QueryRow(context.Background(), sql, arguments...)
}

// Commit commits the transaction.
func (tx *Tx) Commit() error {
	return tx.tx.Commit(context.Background())
}

// Rollback rolls the transaction back.
//
// Calling Rollback after Commit is a no-op, so it is safe to defer.
func (tx *Tx) Rollback() {
	_ = tx.tx.Rollback(context.Background())
}

// Queryable defines an interface for a connection or transaction.
type Queryable interface {
	Exec(sql string, arguments ...any) error
	Query(sql string, arguments ...any) (Rows, error)
	QueryRow(sql string, arguments ...any) Row
}

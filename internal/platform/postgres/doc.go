// Package postgres contains PostgreSQL implementations of the store
// interfaces, backed by database/sql with the pgx driver.
package postgres

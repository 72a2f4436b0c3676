// Package database builds PostgreSQL connection strings and pools for the
// postgres row source.
package database

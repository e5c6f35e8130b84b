// Package repository mediates all access to the record store. Each
// repository owns exactly one collection and serializes its
// read-modify-write cycles behind a mutex, so concurrent requests against
// the same collection cannot lose updates.
package repository

import "errors"

// Collection names used in the record store.
const (
	collectionStudents = "students"
	collectionConfig   = "config"
	collectionTokens   = "tokens"
	collectionLogs     = "logs"
)

// Sentinel errors surfaced by repositories; services translate them into
// API-facing typed errors.
var (
	ErrNotFound  = errors.New("repository: record not found")
	ErrDuplicate = errors.New("repository: record already exists")
)

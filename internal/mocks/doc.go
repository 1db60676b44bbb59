// Package mocks provides in-memory implementations of the store interfaces
// for testing. The memory store reproduces the persistence contracts the
// services rely on — login uniqueness, pair-keyed permission upserts, and
// cascade-on-delete — so every authorization property runs as a unit test
// without a database.
package mocks

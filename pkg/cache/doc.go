// Package cache provides a small TTL key-value cache with in-memory and
// Redis backends. It backs the read-through template row cache; nothing in
// it is specific to templates.
package cache

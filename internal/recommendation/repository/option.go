package repository

import "time"

// Options configures the in-memory per-user stores.
type Options struct {
	// MaxHistory is the number of messages kept per user.
	MaxHistory int

	// MaxUsers caps the number of tracked users; the least recently used
	// user is dropped when exceeded. 0 means unbounded.
	MaxUsers int

	// UserTTL drops a user's state after this long without writes.
	// 0 means never.
	UserTTL time.Duration
}

const DefaultMaxHistory = 10

package store

import "time"

// SyncRun records one copy of a remote source into the embedded store.
type SyncRun struct {
	Source   string
	SyncedAt time.Time
	Records  int64
	Error    *string
}

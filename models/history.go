package models

import "time"

// Entry is one history record of a configuration value. Entries are
// immutable once returned; their ordering is server-defined, so callers
// must consult Active and Timestamp rather than assume chronological order.
type Entry struct {
	ID        int
	Name      string
	Value     string
	Author    string
	Timestamp time.Time
	Active    bool
	Protect   bool
	Override  string
}

// History is the full change log of a single value path within one
// environment, in the order the server returned it.
type History struct {
	Entries []Entry
}
